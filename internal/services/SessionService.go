package services

import (
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"pitwall/internal/auth"
	"pitwall/internal/feed"
	"pitwall/internal/models"
	"pitwall/internal/providers"
	"pitwall/internal/structures"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyPrompt     = errors.New("prompt is empty")
)

type SessionServiceInterface interface {
	Create(ctx context.Context) (*Session, error)
	Get(token string) (*Session, error)
	Close(token string) error
	SignOut(ctx context.Context, token string) error
	Dashboard(token string) (*models.Feed, error)
	CloseDashboard(token string) error
	Prompt(token, prompt string) (models.StatRecord, error)
	Sweep(now time.Time) int
	Shutdown()
	ActiveSessions() int
	ActiveDashboards() int
}

type SessionService struct {
	conf     *structures.Config
	logger   providers.Logger
	provider auth.CredentialProvider
	catalog  *feed.Catalog
	metrics  providers.MetricsProviderInterface
	broker   providers.BrokerProviderInterface

	newTicker feed.TickerFactory
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(conf *structures.Config, logger providers.Logger, provider auth.CredentialProvider, catalog *feed.Catalog, metrics providers.MetricsProviderInterface, broker providers.BrokerProviderInterface) SessionServiceInterface {
	return &SessionService{
		conf:      conf,
		logger:    logger,
		provider:  provider,
		catalog:   catalog,
		metrics:   metrics,
		broker:    broker,
		newTicker: feed.NewWallTicker,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Create opens an anonymous session and restores whatever identity the
// credential provider already holds.
func (ss *SessionService) Create(ctx context.Context) (*Session, error) {
	identity := auth.NewIdentityStore(ss.provider)
	if err := identity.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore identity: %w", err)
	}

	s := newSession(uuid.NewString(), identity, ss.now())

	ss.mu.Lock()
	ss.sessions[s.token] = s
	count := len(ss.sessions)
	ss.mu.Unlock()

	ss.metrics.SetActiveSessions(count)
	ss.logger.Debugf(providers.TypeApp, "Session %s created", s.token)
	return s, nil
}

func (ss *SessionService) Get(token string) (*Session, error) {
	ss.mu.RLock()
	s, ok := ss.sessions[token]
	ss.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(ss.now())
	return s, nil
}

func (ss *SessionService) Close(token string) error {
	ss.mu.Lock()
	s, ok := ss.sessions[token]
	delete(ss.sessions, token)
	count := len(ss.sessions)
	ss.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	if cancel := s.detach(); cancel != nil {
		cancel()
	}
	ss.metrics.SetActiveSessions(count)
	ss.logger.Debugf(providers.TypeApp, "Session %s closed", token)
	return nil
}

// SignOut clears the identity and tears down the dashboard. Provider errors
// are logged, never returned: signing out always succeeds locally.
func (ss *SessionService) SignOut(ctx context.Context, token string) error {
	s, err := ss.Get(token)
	if err != nil {
		return err
	}
	if err := s.identity.SignOut(ctx); err != nil {
		ss.logger.Warnf(providers.TypeApp, "Provider sign-out for session %s: %s", token, err)
	}
	if cancel := s.detach(); cancel != nil {
		cancel()
	}
	return nil
}

// Dashboard attaches the dashboard view. The first attach after a close
// starts a fresh feed and generator; later calls return the running feed.
func (ss *SessionService) Dashboard(token string) (*models.Feed, error) {
	s, err := ss.Get(token)
	if err != nil {
		return nil, err
	}

	s.attach.Lock()
	defer s.attach.Unlock()
	if f, ok := s.Feed(); ok {
		return f, nil
	}

	f := models.NewFeed(uuid.NewString())
	g := feed.NewGenerator(ss.catalog, f, feed.Options{
		Interval:  ss.conf.Feed.Interval,
		SeedCount: ss.conf.Feed.SeedCount,
		UnifyKind: ss.conf.Feed.UnifyKind,
		NewTicker: ss.newTicker,
		Sink:      ss.sink(f),
	})
	// seeding publishes through the sink, so mu stays free meanwhile
	cancel, err := g.Start()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.feed = f
	s.cancel = cancel
	s.mu.Unlock()
	ss.logger.Infof(providers.TypeFeed, "Feed %s started for session %s", f.ID(), token)
	return f, nil
}

func (ss *SessionService) CloseDashboard(token string) error {
	s, err := ss.Get(token)
	if err != nil {
		return err
	}
	if cancel := s.detach(); cancel != nil {
		cancel()
		ss.logger.Infof(providers.TypeFeed, "Feed stopped for session %s", token)
	}
	return nil
}

// Prompt appends a responder record to the dashboard feed, attaching the
// dashboard first if needed.
func (ss *SessionService) Prompt(token, prompt string) (models.StatRecord, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.StatRecord{}, ErrEmptyPrompt
	}
	f, err := ss.Dashboard(token)
	if err != nil {
		return models.StatRecord{}, err
	}

	rec := feed.Respond(prompt, ss.now())
	f.Append(rec)
	ss.sink(f)(rec, feed.SourcePrompt)
	return rec, nil
}

// Sweep drops sessions idle for longer than session.idleTTL and returns how
// many were removed.
func (ss *SessionService) Sweep(now time.Time) int {
	ttl := ss.conf.Session.IdleTTL
	if ttl <= 0 {
		return 0
	}

	var expired []*Session
	ss.mu.Lock()
	for token, s := range ss.sessions {
		if now.Sub(s.LastSeen()) > ttl {
			expired = append(expired, s)
			delete(ss.sessions, token)
		}
	}
	count := len(ss.sessions)
	ss.mu.Unlock()

	for _, s := range expired {
		if cancel := s.detach(); cancel != nil {
			cancel()
		}
		ss.logger.Debugf(providers.TypeApp, "Session %s expired", s.token)
	}
	if len(expired) > 0 {
		ss.metrics.SetActiveSessions(count)
	}
	return len(expired)
}

// Shutdown cancels every running generator. Sessions stay registered.
func (ss *SessionService) Shutdown() {
	ss.mu.RLock()
	all := make([]*Session, 0, len(ss.sessions))
	for _, s := range ss.sessions {
		all = append(all, s)
	}
	ss.mu.RUnlock()

	for _, s := range all {
		if cancel := s.detach(); cancel != nil {
			cancel()
		}
	}
	ss.logger.Infof(providers.TypeApp, "Stopped %d session(s)", len(all))
}

func (ss *SessionService) ActiveSessions() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

func (ss *SessionService) ActiveDashboards() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	n := 0
	for _, s := range ss.sessions {
		if s.DashboardOpen() {
			n++
		}
	}
	return n
}

func (ss *SessionService) sink(f *models.Feed) feed.Sink {
	return func(rec models.StatRecord, source feed.Source) {
		ss.metrics.IncRecordsGenerated(string(source))
		ss.logger.Debugf(providers.TypeFeed, "Feed %s: %s record %s (%s)", f.ID(), source, rec.ID, rec.Category)

		payload, err := json.Marshal(rec)
		if err != nil {
			ss.logger.Errorf(providers.TypeFeed, "Marshal record %s: %s", rec.ID, err)
			return
		}
		if err := ss.broker.Publish(string(rec.Category), payload); err != nil {
			ss.logger.Warnf(providers.TypeFeed, "Publish record %s: %s", rec.ID, err)
		}
	}
}

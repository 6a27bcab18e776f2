package services

import (
	"pitwall/internal/auth"
	"pitwall/internal/models"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Session is the per-viewer state: who is signed in, the dashboard feed
// with its generator, and the viewer's filters and settings.
type Session struct {
	token    string
	identity *auth.IdentityStore
	lastSeen atomic.Time

	// attach serializes dashboard attaches so a generator can seed without
	// holding mu.
	attach sync.Mutex

	mu       sync.Mutex
	feed     *models.Feed
	cancel   func()
	filters  models.FilterSet
	settings models.Settings
}

func newSession(token string, identity *auth.IdentityStore, now time.Time) *Session {
	s := &Session{
		token:    token,
		identity: identity,
		filters:  models.FilterSet{}.Normalize(),
		settings: models.DefaultSettings(),
	}
	s.lastSeen.Store(now)
	return s
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Identity() *auth.IdentityStore {
	return s.identity
}

func (s *Session) LastSeen() time.Time {
	return s.lastSeen.Load()
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now)
}

// Feed returns the attached dashboard feed, if any.
func (s *Session) Feed() (*models.Feed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed, s.feed != nil
}

func (s *Session) DashboardOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Session) Filters() models.FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

func (s *Session) SetFilters(f models.FilterSet) models.FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f.Normalize()
	return s.filters.Clone()
}

func (s *Session) ToggleFilter(dimension, value string) (models.FilterSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.filters.Toggle(dimension, value)
	if err != nil {
		return s.filters.Clone(), err
	}
	s.filters = next
	return s.filters.Clone(), nil
}

func (s *Session) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Session) UpdateSettings(p models.SettingsPatch) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = s.settings.Apply(p)
	return s.settings
}

// detach takes the generator handle out of the session. The caller runs the
// returned cancel outside the session lock.
func (s *Session) detach() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cancel := s.cancel
	s.cancel = nil
	s.feed = nil
	return cancel
}

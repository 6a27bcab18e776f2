package controllers

import (
	"context"
	"errors"
	"net/http"
	"pitwall/internal/providers"
	"pitwall/internal/services"
	"pitwall/internal/structures"
)

type sessionCtxKey struct{}

func withSession(ctx context.Context, s *services.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the session the guard attached to the request.
func SessionFrom(ctx context.Context) (*services.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*services.Session)
	return s, ok
}

// SessionGuard resolves the viewer session from the token header and, in
// guarded mode, keeps anonymous viewers out of protected routes.
type SessionGuard struct {
	conf     *structures.Config
	logger   providers.Logger
	sessions services.SessionServiceInterface
}

func NewSessionGuard(conf *structures.Config, logger providers.Logger, sessions services.SessionServiceInterface) *SessionGuard {
	return &SessionGuard{
		conf:     conf,
		logger:   logger,
		sessions: sessions,
	}
}

func (g *SessionGuard) lookup(r *http.Request) (*services.Session, error) {
	token := r.Header.Get(g.conf.Session.Header)
	if token == "" {
		return nil, services.ErrSessionNotFound
	}
	return g.sessions.Get(token)
}

// Resolve returns the request's session, opening a new one when the token is
// missing or unknown. New tokens are echoed in the response header.
func (g *SessionGuard) Resolve(w http.ResponseWriter, r *http.Request) (*services.Session, error) {
	s, err := g.lookup(r)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, services.ErrSessionNotFound) {
		return nil, err
	}
	s, err = g.sessions.Create(r.Context())
	if err != nil {
		return nil, err
	}
	w.Header().Set(g.conf.Session.Header, s.Token())
	return s, nil
}

func (g *SessionGuard) unauthorized(w http.ResponseWriter) {
	w.Header().Set("Location", "/")
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

func (g *SessionGuard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.conf.Auth.GuardRoutes {
			s, err := g.Resolve(w, r)
			if err != nil {
				g.logger.Errorf(providers.TypeApp, "Open session: %s", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
			return
		}

		s, err := g.lookup(r)
		if err != nil {
			g.unauthorized(w)
			return
		}
		if _, ok := s.Identity().Current(); !ok {
			g.unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

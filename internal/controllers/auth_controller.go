package controllers

import (
	"errors"
	"net/http"
	"pitwall/internal/auth"
	"pitwall/internal/models"
	"pitwall/internal/providers"
	"pitwall/internal/services"
)

type signInPayload struct {
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required"`
}

type signUpPayload struct {
	Email           string   `json:"email" validate:"required|email"`
	Password        string   `json:"password" validate:"required"`
	Name            string   `json:"name"`
	FavoriteDrivers []string `json:"favorite_drivers"`
	FavoriteTeams   []string `json:"favorite_teams"`
}

type AuthController struct {
	logger   providers.Logger
	sessions services.SessionServiceInterface
	guard    *SessionGuard
	metrics  providers.MetricsProviderInterface
}

func NewAuthController(logger providers.Logger, sessions services.SessionServiceInterface, guard *SessionGuard, metrics providers.MetricsProviderInterface) *AuthController {
	return &AuthController{
		logger:   logger,
		sessions: sessions,
		guard:    guard,
		metrics:  metrics,
	}
}

func (ac *AuthController) authFailed(w http.ResponseWriter, op string, err error) {
	ac.metrics.IncAuthAttempts(op, "failure")
	ac.logger.Warnf(providers.TypePost, "Auth %s failed: %s", op, err)

	switch {
	case errors.Is(err, auth.ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, auth.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		var authErr *auth.AuthError
		if errors.As(err, &authErr) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload signUpPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	s, err := ac.guard.Resolve(w, r)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Open session: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	profile := &models.Profile{
		Name:            payload.Name,
		FavoriteDrivers: payload.FavoriteDrivers,
		FavoriteTeams:   payload.FavoriteTeams,
	}
	id, err := s.Identity().SignUp(r.Context(), payload.Email, payload.Password, profile)
	if err != nil {
		ac.authFailed(w, "signup", err)
		return
	}
	ac.metrics.IncAuthAttempts("signup", "success")
	ac.logger.Infof(providers.TypePost, "User %s signed up", id.ID)
	writeJSON(w, http.StatusCreated, id)
}

func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload signInPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	s, err := ac.guard.Resolve(w, r)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Open session: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	id, err := s.Identity().SignIn(r.Context(), payload.Email, payload.Password)
	if err != nil {
		ac.authFailed(w, "signin", err)
		return
	}
	ac.metrics.IncAuthAttempts("signin", "success")
	ac.logger.Infof(providers.TypePost, "User %s signed in", id.ID)
	writeJSON(w, http.StatusOK, id)
}

// SignOut always answers 204; an unknown session has nobody to sign out.
func (ac *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	s, err := ac.guard.lookup(r)
	if err == nil {
		_ = ac.sessions.SignOut(r.Context(), s.Token())
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	s, err := ac.guard.lookup(r)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	id, ok := s.Identity().Current()
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

package auth

import (
	"context"
	"pitwall/internal/models"
	"sync"
	"time"
)

// IdentityStore holds the signed-in identity of one session. It moves
// between anonymous and authenticated only through its own methods.
type IdentityStore struct {
	mu       sync.RWMutex
	provider CredentialProvider
	current  *models.Identity
	now      func() time.Time
}

func NewIdentityStore(provider CredentialProvider) *IdentityStore {
	return &IdentityStore{
		provider: provider,
		now:      time.Now,
	}
}

func (s *IdentityStore) identityFrom(u *ProviderUser, profile *models.Profile) *models.Identity {
	id := &models.Identity{
		ID:              u.ID,
		Email:           u.Email,
		FavoriteDrivers: []string{},
		FavoriteTeams:   []string{},
		CreatedAt:       s.now().UTC(),
	}
	if profile != nil {
		id.Name = profile.Name
		id.FavoriteDrivers = models.Dedupe(profile.FavoriteDrivers)
		id.FavoriteTeams = models.Dedupe(profile.FavoriteTeams)
	}
	return id
}

// SignIn replaces the current identity on success. Favorites start empty.
// On failure the store is left unchanged.
func (s *IdentityStore) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	u, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &AuthError{Op: "signin", Err: ErrInvalidCredentials}
	}

	id := s.identityFrom(u, nil)
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return id.Clone(), nil
}

// SignUp behaves like SignIn but seeds name and favorites from profile.
func (s *IdentityStore) SignUp(ctx context.Context, email, password string, profile *models.Profile) (*models.Identity, error) {
	u, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &AuthError{Op: "signup", Err: ErrInvalidCredentials}
	}

	id := s.identityFrom(u, profile)
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return id.Clone(), nil
}

// SignOut always clears the identity. The provider's error, if any, is
// returned for logging only.
func (s *IdentityStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.provider.SignOut(ctx)
}

func (s *IdentityStore) Current() (*models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

// Restore picks up an identity the provider already knows about.
func (s *IdentityStore) Restore(ctx context.Context) error {
	u, err := s.provider.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}
	id := s.identityFrom(u, nil)
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return nil
}

func (s *IdentityStore) UpdateProfile(patch models.ProfilePatch) (*models.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNotSignedIn
	}
	s.current.Apply(patch)
	return s.current.Clone(), nil
}

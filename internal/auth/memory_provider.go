package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memoryUser struct {
	id   string
	hash []byte
}

// MemoryProvider keeps bcrypt-hashed users in process memory. Unlike the mock
// it rejects unknown users, wrong passwords and duplicate sign-ups, so the
// failure paths of the identity store can be exercised end to end.
type MemoryProvider struct {
	mu    sync.RWMutex
	users map[string]memoryUser
	cost  int
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		users: make(map[string]memoryUser),
		cost:  bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *MemoryProvider) SignUp(_ context.Context, email, password string) (*ProviderUser, error) {
	key := normalizeEmail(email)
	if key == "" || password == "" {
		return nil, &AuthError{Op: "signup", Err: ErrInvalidCredentials}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, &AuthError{Op: "signup", Err: err}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.users[key]; ok {
		return nil, &AuthError{Op: "signup", Err: ErrUserExists}
	}
	u := memoryUser{id: uuid.NewString(), hash: hash}
	p.users[key] = u
	return &ProviderUser{ID: u.id, Email: key}, nil
}

func (p *MemoryProvider) SignIn(_ context.Context, email, password string) (*ProviderUser, error) {
	key := normalizeEmail(email)

	p.mu.RLock()
	u, ok := p.users[key]
	p.mu.RUnlock()
	if !ok {
		return nil, &AuthError{Op: "signin", Err: ErrInvalidCredentials}
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return nil, &AuthError{Op: "signin", Err: ErrInvalidCredentials}
	}
	return &ProviderUser{ID: u.id, Email: key}, nil
}

func (p *MemoryProvider) SignOut(_ context.Context) error {
	return nil
}

// GetCurrentUser returns nil: the provider is shared by every session and
// has no notion of which one is asking.
func (p *MemoryProvider) GetCurrentUser(_ context.Context) (*ProviderUser, error) {
	return nil, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"pitwall/internal/structures"
)

var (
	// ErrInvalidCredentials is returned when email and password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when signing up with a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrNotSignedIn is returned by operations that need a current identity.
	ErrNotSignedIn = errors.New("not signed in")
)

// AuthError is the failure type of every credential provider operation.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %s", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProviderUser is the identity fragment a provider returns.
type ProviderUser struct {
	ID    string
	Email string
}

// CredentialProvider is everything a real backend needs to satisfy to
// replace the mock.
type CredentialProvider interface {
	SignUp(ctx context.Context, email, password string) (*ProviderUser, error)
	SignIn(ctx context.Context, email, password string) (*ProviderUser, error)
	SignOut(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*ProviderUser, error)
}

func NewCredentialProvider(conf *structures.Config) (CredentialProvider, error) {
	switch conf.Auth.Provider {
	case "", "mock":
		return NewMockProvider(), nil
	case "memory":
		return NewMemoryProvider(), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", conf.Auth.Provider)
	}
}

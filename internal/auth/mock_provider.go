package auth

import "context"

// MockUserID is the id every mock sign-in and sign-up resolves to.
const MockUserID = "1"

// MockProvider accepts any credentials. It is a development placeholder and
// must be swapped for a real provider before production use.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) SignUp(_ context.Context, email, _ string) (*ProviderUser, error) {
	return &ProviderUser{ID: MockUserID, Email: email}, nil
}

func (m *MockProvider) SignIn(_ context.Context, email, _ string) (*ProviderUser, error) {
	return &ProviderUser{ID: MockUserID, Email: email}, nil
}

func (m *MockProvider) SignOut(_ context.Context) error {
	return nil
}

// GetCurrentUser never finds a prior session.
func (m *MockProvider) GetCurrentUser(_ context.Context) (*ProviderUser, error) {
	return nil, nil
}

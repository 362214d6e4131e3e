package mocks

import (
	"context"

	"github.com/dawabag/portalsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc          func(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	ResolveSessionFunc func(ctx context.Context, sessionID string) (*domain.RouteDecision, error)
	RefreshTokenFunc   func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	ProfileFunc        func(ctx context.Context, userID string) (*domain.Profile, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login performs a sign-in attempt
func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// ResolveSession resolves the next route for a session
func (m *MockAuthService) ResolveSession(ctx context.Context, sessionID string) (*domain.RouteDecision, error) {
	if m.ResolveSessionFunc != nil {
		return m.ResolveSessionFunc(ctx, sessionID)
	}
	// Default behavior: route to login
	return &domain.RouteDecision{Route: domain.RouteLogin}, nil
}

// RefreshToken renews an access token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Logout deletes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Profile fetches a profile row
func (m *MockAuthService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	RegisterFunc func(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error)
}

// NewMockRegistrationService creates a new MockRegistrationService with default behaviors
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

// Register runs the registration workflow
func (m *MockRegistrationService) Register(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, form)
	}
	// Default behavior: success with the identity keyed off the form email
	return &domain.Profile{
		ID:    "identity-1",
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
		Role:  "user",
	}, nil
}

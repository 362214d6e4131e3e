package mocks

import (
	"context"

	"github.com/dawabag/portalsvc/domain"
)

// MockIdentityService implements domain.IdentityService for testing
type MockIdentityService struct {
	SignUpFunc         func(ctx context.Context, email, password string) (*domain.Identity, error)
	VerifyPasswordFunc func(ctx context.Context, email, password string) (*domain.Identity, error)
	DeleteFunc         func(ctx context.Context, id string) error

	// Call bookkeeping for orchestration-order assertions
	SignUpCalls int
	DeleteCalls []string
}

// NewMockIdentityService creates a new MockIdentityService with default behaviors
func NewMockIdentityService() *MockIdentityService {
	return &MockIdentityService{}
}

// SignUp creates a new identity
func (m *MockIdentityService) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	m.SignUpCalls++
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	// Default behavior: a fixed identity
	return &domain.Identity{ID: "identity-1", Email: email}, nil
}

// VerifyPassword checks credentials against the identity store
func (m *MockIdentityService) VerifyPassword(ctx context.Context, email, password string) (*domain.Identity, error) {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// Delete removes an identity
func (m *MockIdentityService) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

package mocks

import (
	"context"

	"github.com/dawabag/portalsvc/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: stable fake hash
	return "hashed_" + password, nil
}

// Verify verifies a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: matches the fake hash scheme
	return hashedPassword == "hashed_"+password
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error
	SMSCalls    []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records and sends an SMS
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.SMSCalls = append(m.SMSCalls, to)
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: success
	return nil
}

// MockRouteResolver implements domain.RouteResolver for testing
type MockRouteResolver struct {
	RouteForFunc func(role string) string
}

// NewMockRouteResolver creates a new MockRouteResolver with default behaviors
func NewMockRouteResolver() *MockRouteResolver {
	return &MockRouteResolver{}
}

// RouteFor resolves a role to a destination
func (m *MockRouteResolver) RouteFor(role string) string {
	if m.RouteForFunc != nil {
		return m.RouteForFunc(role)
	}
	// Default behavior: echo known roles, fall back to login
	if role == "" {
		return domain.RouteLogin
	}
	return role
}

// MockIdentityRepository implements domain.IdentityRepository for testing
type MockIdentityRepository struct {
	CreateFunc      func(ctx context.Context, identity *domain.Identity) error
	FindByEmailFunc func(ctx context.Context, email string) (*domain.Identity, error)
	DeleteFunc      func(ctx context.Context, id string) error
}

// NewMockIdentityRepository creates a new MockIdentityRepository with default behaviors
func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{}
}

// Create creates an identity record
func (m *MockIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an identity by email
func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrIdentityNotFound
}

// Delete deletes an identity
func (m *MockIdentityRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

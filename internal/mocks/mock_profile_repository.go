package mocks

import (
	"context"

	"github.com/dawabag/portalsvc/domain"
)

// MockProfileRepository implements domain.ProfileRepository for testing
type MockProfileRepository struct {
	CreateFunc       func(ctx context.Context, profile *domain.Profile) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Profile, error)
	CountByEmailFunc func(ctx context.Context, email string) (int64, error)
}

// NewMockProfileRepository creates a new MockProfileRepository with default behaviors
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

// Create creates a new profile row
func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a profile by its identity id
func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// CountByEmail counts profile rows with the exact email
func (m *MockProfileRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	if m.CountByEmailFunc != nil {
		return m.CountByEmailFunc(ctx, email)
	}
	// Default behavior: no matches
	return 0, nil
}

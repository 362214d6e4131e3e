package mocks

import (
	"context"

	"github.com/dawabag/portalsvc/domain"
)

// MockEmailChecker implements domain.EmailChecker for testing
type MockEmailChecker struct {
	CheckFunc  func(ctx context.Context, email string) (domain.EmailAvailability, error)
	CheckCalls int
}

// NewMockEmailChecker creates a new MockEmailChecker with default behaviors
func NewMockEmailChecker() *MockEmailChecker {
	return &MockEmailChecker{}
}

// Check performs the duplicate-email pre-check
func (m *MockEmailChecker) Check(ctx context.Context, email string) (domain.EmailAvailability, error) {
	m.CheckCalls++
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, email)
	}
	// Default behavior: available
	return domain.EmailAvailable, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dawabag/portalsvc/domain"
)

// IdentityServiceImpl implements domain.IdentityService on top of the
// identity repository. Callers treat it as an opaque identity store:
// one call, one result, no retries.
type IdentityServiceImpl struct {
	identityRepo domain.IdentityRepository
	passwordSvc  domain.PasswordService
}

// NewIdentityService creates a new identity service
func NewIdentityService(identityRepo domain.IdentityRepository, passwordSvc domain.PasswordService) domain.IdentityService {
	return &IdentityServiceImpl{
		identityRepo: identityRepo,
		passwordSvc:  passwordSvc,
	}
}

// SignUp implements domain.IdentityService. The returned identity's ID
// keys the profile row created afterwards.
func (s *IdentityServiceImpl) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.identityRepo.Create(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return identity, nil
}

// VerifyPassword implements domain.IdentityService. Lookup and verify
// failures collapse into ErrInvalidCredentials so callers cannot
// distinguish unknown accounts from wrong passwords.
func (s *IdentityServiceImpl) VerifyPassword(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(identity.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return identity, nil
}

// Delete implements domain.IdentityService
func (s *IdentityServiceImpl) Delete(ctx context.Context, id string) error {
	return s.identityRepo.Delete(ctx, id)
}

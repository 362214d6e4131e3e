package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dawabag/portalsvc/domain"
)

// EmailCheckerImpl implements domain.EmailChecker against the profile
// store. The check is a best-effort pre-check: it is not atomic with the
// later insert, and two concurrent registrations can both see
// EmailAvailable. The store's unique constraint is the backstop.
type EmailCheckerImpl struct {
	profileRepo domain.ProfileRepository
	emailDomain string
}

// NewEmailChecker creates a new duplicate-email checker. emailDomain is
// the required trailing suffix, e.g. "@dawabag.com". The match is
// case-sensitive.
func NewEmailChecker(profileRepo domain.ProfileRepository, emailDomain string) domain.EmailChecker {
	return &EmailCheckerImpl{
		profileRepo: profileRepo,
		emailDomain: emailDomain,
	}
}

// Check implements domain.EmailChecker
func (c *EmailCheckerImpl) Check(ctx context.Context, email string) (domain.EmailAvailability, error) {
	if !strings.HasSuffix(email, c.emailDomain) {
		return domain.EmailInvalidDomain, nil
	}

	count, err := c.profileRepo.CountByEmail(ctx, email)
	if err != nil {
		return domain.EmailAvailable, fmt.Errorf("email lookup failed: %w", err)
	}

	if count > 0 {
		return domain.EmailTaken, nil
	}
	return domain.EmailAvailable, nil
}

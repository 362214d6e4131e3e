package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dawabag/portalsvc/domain"
)

// RegistrationConfig holds registration orchestration settings
type RegistrationConfig struct {
	EmailDomain string
	DefaultRole string
}

// RegistrationServiceImpl implements domain.RegistrationService. It
// sequences field validation, the duplicate-email pre-check, identity
// sign-up and the profile insert. Remote calls are never concurrent and
// never retried.
type RegistrationServiceImpl struct {
	identitySvc  domain.IdentityService
	profileRepo  domain.ProfileRepository
	emailChecker domain.EmailChecker
	notifySvc    domain.NotificationService
	cfg          RegistrationConfig
	logger       *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	identitySvc domain.IdentityService,
	profileRepo domain.ProfileRepository,
	emailChecker domain.EmailChecker,
	notifySvc domain.NotificationService,
	cfg RegistrationConfig,
	logger *zap.Logger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		identitySvc:  identitySvc,
		profileRepo:  profileRepo,
		emailChecker: emailChecker,
		notifySvc:    notifySvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Register implements domain.RegistrationService. Field errors are
// accumulated and reported together; no identity or profile call is made
// while any field error exists. The profile row is inserted only after
// the identity exists, keyed by the identity's id.
func (s *RegistrationServiceImpl) Register(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error) {
	fieldErrors := make(map[string]string)

	if form.Name == "" {
		fieldErrors["name"] = "Name is required."
	}
	if form.Email == "" {
		fieldErrors["email"] = "Email is required."
	}
	if form.Phone == "" {
		fieldErrors["phone"] = "Phone number is required."
	}
	if form.Password == "" {
		fieldErrors["password"] = "Password is required."
	}

	if len(fieldErrors) == 0 {
		if !domain.ValidateName(form.Name) {
			fieldErrors["name"] = "Name must be at least 5 characters long."
		}

		availability, err := s.emailChecker.Check(ctx, form.Email)
		if err != nil {
			return nil, fmt.Errorf("email availability check failed: %w", err)
		}
		if availability != domain.EmailAvailable {
			fieldErrors["email"] = fmt.Sprintf("This email is already taken or invalid. Use your_name%s", s.cfg.EmailDomain)
		}

		if !domain.ValidatePhone(form.Phone) {
			fieldErrors["phone"] = "Phone number must be exactly 10 digits."
		}
		if !domain.ValidatePassword(form.Password) {
			fieldErrors["password"] = "Password must be at least 8 characters long."
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	identity, err := s.identitySvc.SignUp(ctx, form.Email, form.Password)
	if err != nil {
		return nil, fmt.Errorf("sign-up failed: %w", err)
	}

	profile := &domain.Profile{
		ID:    identity.ID,
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
		Role:  s.cfg.DefaultRole,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// Compensate: remove the identity created above so a failed
		// insert does not leave an orphaned account.
		if delErr := s.identitySvc.Delete(ctx, identity.ID); delErr != nil {
			s.logger.Error("orphaned identity after failed profile insert",
				zap.String("identity_id", identity.ID),
				zap.String("email", identity.Email),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if s.notifySvc != nil {
		if smsErr := s.notifySvc.SendSMS(profile.Phone, "Your Dawabag portal account is ready. Please log in."); smsErr != nil {
			s.logger.Warn("welcome sms failed",
				zap.String("user_id", profile.ID),
				zap.Error(smsErr))
		}
	}

	s.logger.Info("user registered",
		zap.String("user_id", profile.ID),
		zap.String("role", profile.Role))

	return profile, nil
}

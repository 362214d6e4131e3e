package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dawabag/portalsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	identitySvc domain.IdentityService
	profileRepo domain.ProfileRepository
	sessionRepo domain.SessionRepository
	tokenSvc    domain.TokenService
	routes      domain.RouteResolver
	sessionTTL  time.Duration
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	identitySvc domain.IdentityService,
	profileRepo domain.ProfileRepository,
	sessionRepo domain.SessionRepository,
	tokenSvc domain.TokenService,
	routes domain.RouteResolver,
	sessionTTL time.Duration,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		identitySvc: identitySvc,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		tokenSvc:    tokenSvc,
		routes:      routes,
		sessionTTL:  sessionTTL,
		accessTTL:   accessTTL,
	}
}

// Login implements domain.AuthService. On success the session carries
// the identity's id and email so resumes need no identity-store call.
func (s *AuthServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	identity, err := s.identitySvc.VerifyPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(ctx, identity.ID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%s", uuid.NewString()),
		UserID:    identity.ID,
		Email:     identity.Email,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	role := ""
	if profile != nil {
		role = profile.Role
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(identity.ID, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(identity.ID, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		UserID:       identity.ID,
		Email:        identity.Email,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		Route:        s.routes.RouteFor(role),
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// ResolveSession implements domain.AuthService. A missing or expired
// session is a normal branch routing to login, not an error; only
// unexpected store failures surface as errors.
func (s *AuthServiceImpl) ResolveSession(ctx context.Context, sessionID string) (*domain.RouteDecision, error) {
	if sessionID == "" {
		return &domain.RouteDecision{Route: domain.RouteLogin}, nil
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return &domain.RouteDecision{Route: domain.RouteLogin}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	profile, err := s.profileRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			// A session without a profile row cannot be routed by role.
			return &domain.RouteDecision{Route: domain.RouteLogin}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &domain.RouteDecision{
		Route:  s.routes.RouteFor(profile.Role),
		UserID: session.UserID,
		Email:  session.Email,
	}, nil
}

// RefreshToken implements domain.AuthService
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	profile, err := s.profileRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(profile.ID, profile.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		UserID:       profile.ID,
		Email:        profile.Email,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // Keep same refresh token
		SessionID:    session.ID,
		Route:        s.routes.RouteFor(profile.Role),
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService. On failure the session is left
// untouched so the caller can report and retry manually.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.FindByID(ctx, userID)
}

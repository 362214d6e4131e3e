package domain

import "context"

// IdentityService defines the identity-store operations consumed by the
// registration and login flows. Implementations are treated as a black
// box: one call, one result, no retries.
type IdentityService interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	VerifyPassword(ctx context.Context, email, password string) (*Identity, error)
	Delete(ctx context.Context, id string) error
}

// IdentityRepository defines identity data access operations.
type IdentityRepository interface {
	Create(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Delete(ctx context.Context, id string) error
}

// ProfileRepository defines profile data access operations against the
// master_users table.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

// SessionRepository defines session data access operations.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// EmailChecker performs the best-effort duplicate-email pre-check. The
// check is non-atomic: two concurrent registrations can both observe
// EmailAvailable; uniqueness is ultimately the store's constraint.
type EmailChecker interface {
	Check(ctx context.Context, email string) (EmailAvailability, error)
}

// RegistrationService sequences field validation, the duplicate-email
// check, identity sign-up and the profile insert into one operation.
type RegistrationService interface {
	Register(ctx context.Context, form *RegistrationForm) (*Profile, error)
}

// AuthService defines the sign-in, session-resume and sign-out flows.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	ResolveSession(ctx context.Context, sessionID string) (*RouteDecision, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, userID string) (*Profile, error)
}

// RouteResolver maps a role attribute onto an allow-listed destination.
type RouteResolver interface {
	RouteFor(role string) string
}

// PasswordService defines password operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations.
type TokenService interface {
	GenerateAccessToken(userID, role, sessionID string) (string, error)
	GenerateRefreshToken(userID, role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
}

// PolicyService defines authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}

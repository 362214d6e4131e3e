package domain

import "time"

// Identity represents an account in the identity store. It is the
// authoritative credential record; profiles reference it by ID.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile represents the application-specific user record, linked
// one-to-one with an Identity. Credentials are never stored here.
type Profile struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credentials represents one sign-in attempt's input. Ephemeral.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationForm represents raw sign-up input before validation.
type RegistrationForm struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Session is the cached projection of an authenticated identity, held
// for the lifetime of the login. The identity store stays the source
// of truth.
type Session struct {
	ID        string
	UserID    string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult represents a successful login outcome. UserID and Email
// always reflect the authenticated identity; Profile may be nil when no
// profile row exists yet.
type AuthResult struct {
	UserID       string
	Email        string
	Profile      *Profile
	AccessToken  string
	RefreshToken string
	SessionID    string
	Route        string
	ExpiresIn    int64
}

// RouteDecision names the screen the client should show next. UserID
// and Email are populated only when a live session backs the decision.
type RouteDecision struct {
	Route  string
	UserID string
	Email  string
}

// EmailAvailability is the outcome of the duplicate-email pre-check.
type EmailAvailability int

const (
	// EmailAvailable means no existing profile uses the address.
	EmailAvailable EmailAvailability = iota
	// EmailTaken means at least one profile row already uses the address.
	EmailTaken
	// EmailInvalidDomain means the address is outside the organizational domain.
	EmailInvalidDomain
)

// Well-known logical routes. Role destinations are resolved through the
// configured allow-list, never from raw role values.
const (
	RouteLogin    = "login"
	RouteRegister = "register"
)

// TokenClaims represents JWT token claims.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

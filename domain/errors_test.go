package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "no fields",
			fields: nil,
			want:   "validation failed",
		},
		{
			name:   "single field",
			fields: map[string]string{"email": "Email is required."},
			want:   "validation failed: email",
		},
		{
			name: "fields are sorted",
			fields: map[string]string{
				"phone": "Phone number is required.",
				"name":  "Name is required.",
				"email": "Email is required.",
			},
			want: "validation failed: email, name, phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Fields: tt.fields}
			if got := ve.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsValidationError(t *testing.T) {
	ve := &ValidationError{Fields: map[string]string{"name": "Name is required."}}

	if got := AsValidationError(ve); got != ve {
		t.Errorf("AsValidationError(ve) = %v, want the original error", got)
	}

	wrapped := fmt.Errorf("register: %w", ve)
	if got := AsValidationError(wrapped); got != ve {
		t.Errorf("AsValidationError(wrapped) = %v, want the original error", got)
	}

	if got := AsValidationError(errors.New("boom")); got != nil {
		t.Errorf("AsValidationError(plain error) = %v, want nil", got)
	}

	if got := AsValidationError(nil); got != nil {
		t.Errorf("AsValidationError(nil) = %v, want nil", got)
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"identity not found", ErrIdentityNotFound, "identity not found"},
		{"invalid credentials", ErrInvalidCredentials, "invalid credentials"},
		{"email taken", ErrEmailTaken, "email already registered"},
		{"profile not found", ErrProfileNotFound, "profile not found"},
		{"session not found", ErrSessionNotFound, "session not found"},
		{"session expired", ErrSessionExpired, "session has expired"},
		{"token invalid", ErrTokenInvalid, "invalid token"},
		{"token expired", ErrTokenExpired, "token has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("error message = %q, want %q", tt.err.Error(), tt.want)
			}
			wrapped := fmt.Errorf("service: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("wrapped error does not match sentinel %v", tt.err)
			}
		})
	}
}

package services

import (
	"testing"

	"go.uber.org/zap"
)

func TestRouteResolverImpl_RouteFor(t *testing.T) {
	resolver := NewRouteResolver([]string{"admin", "user", "doctor"}, "login", zap.NewNop())

	tests := []struct {
		name string
		role string
		want string
	}{
		{"allow-listed admin", "admin", "admin"},
		{"allow-listed doctor", "doctor", "doctor"},
		{"empty role falls back", "", "login"},
		{"unknown role falls back", "superuser", "login"},
		{"path-like role falls back", "../admin", "login"},
		{"case sensitive", "Admin", "login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.RouteFor(tt.role); got != tt.want {
				t.Errorf("RouteFor(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

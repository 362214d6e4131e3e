package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/dawabag/portalsvc/internal/config"
)

// TestJWTSecret is the deterministic signing key used by the E2E suite.
const TestJWTSecret = "test-jwt-secret-for-portal-e2e"

// LoadTestConfig builds the configuration the E2E suite runs with. The
// DSN and Redis address are filled in later by the suite, which owns the
// in-process sqlite and miniredis instances.
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	// Optional overrides from .env.test for runs against live services.
	if err := godotenv.Load(".env.test"); err != nil {
		t.Logf("no .env.test file, using built-in test config: %v", err)
	}

	cfg := &config.Config{
		Port:              "8081",
		GinMode:           "test",
		LogLevel:          "error",
		JWTSecret:         envOr("JWT_SECRET", TestJWTSecret),
		JWTIssuer:         "portalsvc-test",
		AccessTTL:         15 * time.Minute,
		RefreshTTL:        168 * time.Hour,
		EmailDomain:       "@dawabag.com",
		DefaultRole:       "user",
		RouteDestinations: []string{"admin", "user"},
		RouteFallback:     "login",
		CasbinModelPath:   filepath.Join(GetProjectRoot(), "config", "casbin_model.conf"),
	}

	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetProjectRoot walks up from the working directory to the directory
// holding go.mod, so config files resolve regardless of test package.
func GetProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}

	return "."
}

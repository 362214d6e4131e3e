package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dawabag/portalsvc/internal/config"
	httpx "github.com/dawabag/portalsvc/internal/http"
	"github.com/dawabag/portalsvc/internal/http/handlers"
	"github.com/dawabag/portalsvc/internal/http/middleware"
	"github.com/dawabag/portalsvc/internal/infrastructure/auth"
	"github.com/dawabag/portalsvc/internal/infrastructure/notifications"
	"github.com/dawabag/portalsvc/internal/infrastructure/repositories"
	"github.com/dawabag/portalsvc/internal/services"
	testconfig "github.com/dawabag/portalsvc/internal/tests/config"
)

// TestServer runs the full HTTP surface against in-process stores:
// sqlite for the tabular data and miniredis for sessions.
type TestServer struct {
	Server *httptest.Server
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Client *http.Client
}

// NewTestServer wires the real service stack over test stores.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testconfig.LoadTestConfig(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBIdentity{}, &repositories.DBProfile{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	enforcer, err := casbin.NewEnforcer(cfg.CasbinModelPath)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	enforcer.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	enforcer.AddPolicy("role_admin", "/auth/me", "GET")
	enforcer.AddPolicy("role_admin", "/auth/logout", "POST")
	enforcer.AddPolicy("role_user", "/auth/me", "GET")
	enforcer.AddPolicy("role_user", "/auth/logout", "POST")

	logger := zap.NewNop()

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := notifications.NewTwilioService("", "", "")

	identityRepo := repositories.NewIdentityRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.RefreshTTL)

	identitySvc := auth.NewIdentityService(identityRepo, passwordSvc)
	emailChecker := services.NewEmailChecker(profileRepo, cfg.EmailDomain)
	routeResolver := services.NewRouteResolver(cfg.RouteDestinations, cfg.RouteFallback, logger)

	regSvc := services.NewRegistrationService(
		identitySvc, profileRepo, emailChecker, notificationSvc,
		services.RegistrationConfig{EmailDomain: cfg.EmailDomain, DefaultRole: cfg.DefaultRole},
		logger,
	)
	authSvc := services.NewAuthService(
		identitySvc, profileRepo, sessionRepo, tokenSvc, routeResolver,
		cfg.RefreshTTL, cfg.AccessTTL,
	)

	authH := handlers.NewAuthHandlers(authSvc, regSvc, tokenSvc)
	polH := &handlers.PolicyHandlers{Policies: services.NewPolicyService(enforcer)}
	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(enforcer)

	router := httpx.BuildRouter(authH, polH, jwtMW, casbinMW)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		rdb.Close()
		mr.Close()
	})

	return &TestServer{
		Server: server,
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Client: server.Client(),
	}
}

// PostJSON issues a JSON POST and decodes the response body.
func (ts *TestServer) PostJSON(t *testing.T, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

// Get issues a GET and decodes the response body.
func (ts *TestServer) Get(t *testing.T, path, token string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return resp.StatusCode, body
}

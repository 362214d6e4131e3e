package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dawabag/portalsvc/domain"
	"github.com/dawabag/portalsvc/internal/mocks"
)

func newTestHandlers() (*AuthHandlers, *mocks.MockAuthService, *mocks.MockRegistrationService, *mocks.MockTokenService) {
	authSvc := mocks.NewMockAuthService()
	regSvc := mocks.NewMockRegistrationService()
	tokenSvc := mocks.NewMockTokenService()
	return NewAuthHandlers(authSvc, regSvc, tokenSvc), authSvc, regSvc, tokenSvc
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}

	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure returns all field errors", func(t *testing.T) {
		h, _, regSvc, _ := newTestHandlers()
		regSvc.RegisterFunc = func(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error) {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"name":     "Name is required.",
				"email":    "Email is required.",
				"phone":    "Phone number is required.",
				"password": "Password is required.",
			}}
		}

		w := performJSON(t, h.Register, http.MethodPost, "/auth/register", RegisterRequest{}, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}

		body := decodeBody(t, w)
		fieldErrors, ok := body["field_errors"].(map[string]interface{})
		if !ok {
			t.Fatalf("field_errors missing from body %v", body)
		}
		if len(fieldErrors) != 4 {
			t.Errorf("got %d field errors, want 4: %v", len(fieldErrors), fieldErrors)
		}
		if body["route"] != "register" {
			t.Errorf("route = %v, want register so the client stays on the form", body["route"])
		}
	})

	t.Run("successful registration", func(t *testing.T) {
		h, _, regSvc, _ := newTestHandlers()
		regSvc.RegisterFunc = func(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error) {
			return &domain.Profile{ID: "uuid-1", Name: form.Name, Email: form.Email, Phone: form.Phone, Role: "user"}, nil
		}

		req := RegisterRequest{Name: "Ramesh Kumar", Email: "ramesh@dawabag.com", Phone: "9876543210", Password: "supersecret"}
		w := performJSON(t, h.Register, http.MethodPost, "/auth/register", req, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}

		body := decodeBody(t, w)
		data := body["data"].(map[string]interface{})
		if data["user_id"] != "uuid-1" {
			t.Errorf("user_id = %v, want uuid-1", data["user_id"])
		}
		if data["route"] != "login" {
			t.Errorf("route = %v, want login", data["route"])
		}
	})

	t.Run("service failure surfaces message", func(t *testing.T) {
		h, _, regSvc, _ := newTestHandlers()
		regSvc.RegisterFunc = func(ctx context.Context, form *domain.RegistrationForm) (*domain.Profile, error) {
			return nil, domain.ErrEmailTaken
		}

		req := RegisterRequest{Name: "Ramesh Kumar", Email: "ramesh@dawabag.com", Phone: "9876543210", Password: "supersecret"}
		w := performJSON(t, h.Register, http.MethodPost, "/auth/register", req, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		body := decodeBody(t, w)
		if body["error"] != "email already registered" {
			t.Errorf("error = %v, want the service message", body["error"])
		}
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful login returns tokens and route", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		authSvc.LoginFunc = func(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
			return &domain.AuthResult{
				UserID:       "uuid-1",
				Email:        creds.Email,
				Profile:      &domain.Profile{ID: "uuid-1", Email: creds.Email, Role: "admin"},
				AccessToken:  "access_1",
				RefreshToken: "refresh_1",
				SessionID:    "sess_1",
				Route:        "admin",
				ExpiresIn:    900,
			}, nil
		}

		w := performJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "a@dawabag.com", Password: "supersecret"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["access_token"] != "access_1" {
			t.Errorf("access_token = %v", data["access_token"])
		}
		if data["route"] != "admin" {
			t.Errorf("route = %v, want admin", data["route"])
		}
		user := data["user"].(map[string]interface{})
		if user["id"] != "uuid-1" || user["role"] != "admin" {
			t.Errorf("user = %v", user)
		}
	})

	t.Run("invalid credentials return the service message", func(t *testing.T) {
		h, _, _, _ := newTestHandlers()
		// MockAuthService default rejects with ErrInvalidCredentials

		w := performJSON(t, h.Login, http.MethodPost, "/auth/login", LoginRequest{Email: "a@dawabag.com", Password: "wrong"}, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if decodeBody(t, w)["error"] != "invalid credentials" {
			t.Errorf("error = %v, want verbatim service message", decodeBody(t, w)["error"])
		}
	})

	t.Run("missing fields rejected by binding", func(t *testing.T) {
		h, _, _, _ := newTestHandlers()
		w := performJSON(t, h.Login, http.MethodPost, "/auth/login", map[string]string{"email": "a@dawabag.com"}, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestAuthHandlers_Session(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no token routes to login", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		authSvc.ResolveSessionFunc = func(ctx context.Context, sessionID string) (*domain.RouteDecision, error) {
			if sessionID != "" {
				t.Errorf("sessionID = %q, want empty for anonymous caller", sessionID)
			}
			return &domain.RouteDecision{Route: domain.RouteLogin}, nil
		}

		w := performJSON(t, h.Session, http.MethodGet, "/auth/session", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["route"] != "login" {
			t.Errorf("route = %v, want login", data["route"])
		}
		if _, hasUser := data["user"]; hasUser {
			t.Error("anonymous resolution should not include a user")
		}
	})

	t.Run("valid token resolves role destination", func(t *testing.T) {
		h, authSvc, _, tokenSvc := newTestHandlers()
		tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: "uuid-1", Role: "admin", SessionID: "sess_1"}, nil
		}
		authSvc.ResolveSessionFunc = func(ctx context.Context, sessionID string) (*domain.RouteDecision, error) {
			if sessionID != "sess_1" {
				t.Errorf("sessionID = %q, want sess_1", sessionID)
			}
			return &domain.RouteDecision{Route: "admin", UserID: "uuid-1", Email: "a@dawabag.com"}, nil
		}

		w := performJSON(t, h.Session, http.MethodGet, "/auth/session", nil, map[string]string{"Authorization": "Bearer token_1"})
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["route"] != "admin" {
			t.Errorf("route = %v, want admin", data["route"])
		}
		user := data["user"].(map[string]interface{})
		if user["id"] != "uuid-1" {
			t.Errorf("user id = %v, want uuid-1", user["id"])
		}
	})

	t.Run("invalid token is a normal login branch", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		// MockTokenService default: token invalid
		authSvc.ResolveSessionFunc = func(ctx context.Context, sessionID string) (*domain.RouteDecision, error) {
			return &domain.RouteDecision{Route: domain.RouteLogin}, nil
		}

		w := performJSON(t, h.Session, http.MethodGet, "/auth/session", nil, map[string]string{"Authorization": "Bearer expired"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d for invalid token", w.Code, http.StatusOK)
		}
	})
}

func TestAuthHandlers_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful refresh", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		authSvc.RefreshTokenFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
			return &domain.AuthResult{AccessToken: "access_2", Route: "user", ExpiresIn: 900}, nil
		}

		w := performJSON(t, h.Refresh, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "refresh_1"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["access_token"] != "access_2" {
			t.Errorf("access_token = %v", data["access_token"])
		}
	})

	t.Run("expired refresh token", func(t *testing.T) {
		h, _, _, _ := newTestHandlers()
		// MockAuthService default: ErrTokenInvalid

		w := performJSON(t, h.Refresh, http.MethodPost, "/auth/refresh", RefreshRequest{RefreshToken: "stale"}, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestAuthHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns profile without credentials", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		authSvc.ProfileFunc = func(ctx context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: userID, Name: "Ramesh Kumar", Email: "ramesh@dawabag.com", Phone: "9876543210", Role: "user"}, nil
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		c.Set("user_id", "uuid-1")

		h.Me(c)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["name"] != "Ramesh Kumar" {
			t.Errorf("name = %v", data["name"])
		}
		if _, leaked := data["password"]; leaked {
			t.Error("profile response must never carry a password")
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		h, _, _, _ := newTestHandlers()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		c.Set("user_id", "uuid-ghost")

		h.Me(c)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful logout routes to login", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		cleared := ""
		authSvc.LogoutFunc = func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		c.Set("session_id", "sess_1")

		h.Logout(c)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if cleared != "sess_1" {
			t.Errorf("cleared session = %q, want sess_1", cleared)
		}
		data := decodeBody(t, w)["data"].(map[string]interface{})
		if data["route"] != "login" {
			t.Errorf("route = %v, want login", data["route"])
		}
	})

	t.Run("store failure leaves state and reports error", func(t *testing.T) {
		h, authSvc, _, _ := newTestHandlers()
		authSvc.LogoutFunc = func(ctx context.Context, sessionID string) error {
			return domain.ErrSessionNotFound
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		c.Set("session_id", "sess_1")

		h.Logout(c)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}

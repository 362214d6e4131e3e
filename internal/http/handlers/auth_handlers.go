package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dawabag/portalsvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	regSvc   domain.RegistrationService
	tokenSvc domain.TokenService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, regSvc domain.RegistrationService, tokenSvc domain.TokenService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		regSvc:   regSvc,
		tokenSvc: tokenSvc,
	}
}

// RegisterRequest represents registration request. Presence and field
// rules are enforced by the registration service so failures come back
// as one aggregated field-error map.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := &domain.RegistrationForm{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}

	profile, err := h.regSvc.Register(c.Request.Context(), form)
	if err != nil {
		if ve := domain.AsValidationError(err); ve != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":        "Validation failed",
				"field_errors": ve.Fields,
				"route":        domain.RouteRegister,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Account created successfully. Please log in.",
			"user_id": profile.ID,
			"route":   domain.RouteLogin,
		},
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// The service's message is surfaced as-is; no retry.
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	user := gin.H{"id": result.UserID, "email": result.Email}
	if result.Profile != nil {
		user["role"] = result.Profile.Role
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token":  result.AccessToken,
			"refresh_token": result.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    result.ExpiresIn,
			"route":         result.Route,
			"user":          user,
		},
	})
}

// Session handles cold-start session resolution. An absent or invalid
// token is a normal branch that routes to login, never an error status.
func (h *AuthHandlers) Session(c *gin.Context) {
	sessionID := ""

	authHeader := c.GetHeader("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		if claims, err := h.tokenSvc.ValidateAccessToken(parts[1]); err == nil {
			sessionID = claims.SessionID
		}
	}

	decision, err := h.authSvc.ResolveSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session resolution failed"})
		return
	}

	data := gin.H{"route": decision.Route}
	if decision.UserID != "" {
		data["user"] = gin.H{
			"id":    decision.UserID,
			"email": decision.Email,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"route":        result.Route,
		},
	})
}

// Me handles getting the caller's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	profile, err := h.authSvc.Profile(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         profile.ID,
			"name":       profile.Name,
			"email":      profile.Email,
			"phone":      profile.Phone,
			"role":       profile.Role,
			"created_at": profile.CreatedAt,
			"updated_at": profile.UpdatedAt,
		},
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	// On failure the session stays live and the client keeps its state.
	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
			"route":   domain.RouteLogin,
		},
	})
}

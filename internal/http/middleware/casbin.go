package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/dawabag/portalsvc/domain"
)

// CasbinMW wraps the casbin enforcer for role-based route enforcement

type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the casbin authorization middleware. Roles are matched
// with the role_ prefix used by the seeded policies.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		_, userExists := c.Get("user_id")
		role, roleExists := c.Get("user_role")
		if !userExists || !roleExists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthorized.Error()})
			c.Abort()
			return
		}

		sub := "role_" + role.(string)
		obj := c.Request.URL.Path
		act := c.Request.Method

		allowed, err := mw.enforcer.Enforce(sub, obj, act)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": domain.ErrInsufficientRole.Error()})
			c.Abort()
			return
		}

		c.Next()
	})
}

package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dawabag/portalsvc/internal/config"
	httpx "github.com/dawabag/portalsvc/internal/http"
	"github.com/dawabag/portalsvc/internal/http/handlers"
	"github.com/dawabag/portalsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize handlers
	authH := handlers.NewAuthHandlers(c.AuthSvc, c.RegistrationSvc, c.TokenSvc)
	polH := &handlers.PolicyHandlers{Policies: c.PolicySvc}

	// Initialize middleware
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	// Build router
	r := httpx.BuildRouter(authH, polH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	c.Logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

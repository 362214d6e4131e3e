package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dawabag/portalsvc/domain"
	"github.com/dawabag/portalsvc/internal/config"
	"github.com/dawabag/portalsvc/internal/infrastructure/auth"
	"github.com/dawabag/portalsvc/internal/infrastructure/database"
	"github.com/dawabag/portalsvc/internal/infrastructure/notifications"
	"github.com/dawabag/portalsvc/internal/infrastructure/repositories"
	"github.com/dawabag/portalsvc/internal/logger"
	"github.com/dawabag/portalsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	IdentityRepo domain.IdentityRepository
	ProfileRepo  domain.ProfileRepository
	SessionRepo  domain.SessionRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	IdentitySvc     domain.IdentityService
	EmailChecker    domain.EmailChecker
	RouteResolver   domain.RouteResolver
	RegistrationSvc domain.RegistrationService
	AuthSvc         domain.AuthService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	container.Logger = log

	// Initialize infrastructure
	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	container.initServices()

	if err := container.seedPolicies(); err != nil {
		return nil, err
	}

	return container, nil
}

// Role policies installed on first boot against an empty policy store.
var defaultPolicies = [][3]string{
	{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
	{"role_admin", "/auth/me", "GET"},
	{"role_admin", "/auth/logout", "POST"},
	{"role_user", "/auth/me", "GET"},
	{"role_user", "/auth/logout", "POST"},
}

func (c *Container) seedPolicies() error {
	return seedDefaultPolicies(services.NewCasbinEnforcerWrapper(c.Casbin.E), c.Logger)
}

func seedDefaultPolicies(enforcer domain.CasbinEnforcer, log *zap.Logger) error {
	policies, err := enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}
	if len(policies) > 0 {
		return nil
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}
	if err := enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to persist seeded policies: %w", err)
	}

	log.Info("seeded default policies", zap.Int("count", len(defaultPolicies)))
	return nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(
		c.Config.RedisAddr,
		c.Config.RedisPassword,
		c.Config.RedisDB,
	).Client
	return nil
}

func (c *Container) initRepositories() {
	c.IdentityRepo = repositories.NewIdentityRepository(c.DB)
	c.ProfileRepo = repositories.NewProfileRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.RefreshTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)
	c.IdentitySvc = auth.NewIdentityService(c.IdentityRepo, c.PasswordSvc)
	c.EmailChecker = services.NewEmailChecker(c.ProfileRepo, c.Config.EmailDomain)
	c.RouteResolver = services.NewRouteResolver(
		c.Config.RouteDestinations,
		c.Config.RouteFallback,
		c.Logger,
	)

	c.RegistrationSvc = services.NewRegistrationService(
		c.IdentitySvc,
		c.ProfileRepo,
		c.EmailChecker,
		c.NotificationSvc,
		services.RegistrationConfig{
			EmailDomain: c.Config.EmailDomain,
			DefaultRole: c.Config.DefaultRole,
		},
		c.Logger,
	)

	c.AuthSvc = services.NewAuthService(
		c.IdentitySvc,
		c.ProfileRepo,
		c.SessionRepo,
		c.TokenSvc,
		c.RouteResolver,
		c.Config.RefreshTTL,
		c.Config.AccessTTL,
	)

	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

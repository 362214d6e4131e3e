package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     int    `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type RegistrationConfig struct {
	EmailDomain string `yaml:"email_domain"`
	DefaultRole string `yaml:"default_role"`
}

type RoutesConfig struct {
	Destinations []string `yaml:"destinations"`
	Fallback     string   `yaml:"fallback"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Registration RegistrationConfig `yaml:"registration"`
	Routes       RoutesConfig       `yaml:"routes"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Casbin       CasbinConfig       `yaml:"casbin"`
}

type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	AccessTTL         time.Duration
	RefreshTTL        time.Duration
	EmailDomain       string
	DefaultRole       string
	RouteDestinations []string
	RouteFallback     string
	TwilioSID         string
	TwilioToken       string
	TwilioFrom        string
	CasbinModelPath   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the service configuration from config/config.yml (or the
// path in PORTAL_CONFIG) and applies defaults for optional sections.
func Load() (*Config, error) {
	return LoadFrom(env("PORTAL_CONFIG", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	cfg := &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		LogLevel:          configFile.App.LogLevel,
		DSN:               configFile.Database.DSN,
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		JWTSecret:         configFile.JWT.Secret,
		JWTIssuer:         configFile.JWT.Issuer,
		AccessTTL:         accTTL,
		RefreshTTL:        refTTL,
		EmailDomain:       configFile.Registration.EmailDomain,
		DefaultRole:       configFile.Registration.DefaultRole,
		RouteDestinations: configFile.Routes.Destinations,
		RouteFallback:     configFile.Routes.Fallback,
		TwilioSID:         configFile.Twilio.AccountSID,
		TwilioToken:       configFile.Twilio.AuthToken,
		TwilioFrom:        configFile.Twilio.FromNumber,
		CasbinModelPath:   configFile.Casbin.ModelPath,
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = "@dawabag.com"
	}
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = "user"
	}
	if cfg.RouteFallback == "" {
		cfg.RouteFallback = "login"
	}
	if len(cfg.RouteDestinations) == 0 {
		cfg.RouteDestinations = []string{"admin", "user"}
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

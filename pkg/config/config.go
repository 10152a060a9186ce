package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "graceway"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App        AppConfig
	API        APIConfig
	Cookie     CookieConfig
	TokenStore TokenStoreConfig
	Redis      RedisConfig
	Gateway    GatewayConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.TokenStore.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GRACEWAY_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"GRACEWAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GRACEWAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL string        `envconfig:"GRACEWAY_API_BASE_URL" default:"http://localhost:4000/api"`
	Timeout time.Duration `envconfig:"GRACEWAY_API_TIMEOUT" default:"30s"`
}

// CookieConfig covers the admin cookie the route-guard middleware consumes.
// The defaults are contractual: the dashboard middleware looks for this exact
// name and the backend session length matches the ten-day expiry.
type CookieConfig struct {
	Name   string        `envconfig:"GRACEWAY_COOKIE_NAME" default:"admin_access_token"`
	MaxAge time.Duration `envconfig:"GRACEWAY_COOKIE_MAX_AGE" default:"240h"`
}

const (
	TokenStoreMemory = "memory"
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
)

type TokenStoreConfig struct {
	Kind     string `envconfig:"GRACEWAY_TOKEN_STORE" default:"file"`
	FilePath string `envconfig:"GRACEWAY_TOKEN_FILE"`
}

func (t TokenStoreConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(t.Kind)) {
	case TokenStoreMemory, TokenStoreFile, TokenStoreRedis:
		return nil
	default:
		return fmt.Errorf("unknown token store kind %q", t.Kind)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"GRACEWAY_REDIS_URL"`
	Address      string        `envconfig:"GRACEWAY_REDIS_ADDR"`
	Password     string        `envconfig:"GRACEWAY_REDIS_PASSWORD"`
	DB           int           `envconfig:"GRACEWAY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GRACEWAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GRACEWAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GRACEWAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GRACEWAY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GRACEWAY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type GatewayConfig struct {
	Port       string   `envconfig:"GRACEWAY_GATEWAY_PORT" default:"8880"`
	BackendURL string   `envconfig:"GRACEWAY_GATEWAY_BACKEND_URL" default:"http://localhost:3000"`
	LoginPath  string   `envconfig:"GRACEWAY_GATEWAY_LOGIN_PATH" default:"/login"`
	PublicPath []string `envconfig:"GRACEWAY_GATEWAY_PUBLIC_PATHS" default:"/login,/healthz"`
	Origins    []string `envconfig:"GRACEWAY_GATEWAY_ORIGINS" default:"http://localhost:3000"`
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config es la configuración completa del servicio
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port          string `mapstructure:"port"`
	AppName       string `mapstructure:"app_name"`
	Version       string `mapstructure:"version"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
	Environment   string `mapstructure:"environment"`
}

// UpstreamConfig describe el proveedor de datos financieros
type UpstreamConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Ticker    string        `mapstructure:"ticker"`
	Period    string        `mapstructure:"period"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit int           `mapstructure:"rate_limit"` // peticiones por segundo
}

// DatabaseConfig es opcional: sin URL no se guardan los logs de peticiones
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RateLimitConfig struct {
	Max        int           `mapstructure:"max"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// variables de entorno asociadas a cada clave
var envBindings = map[string]string{
	"server.port":           "PORT",
	"server.app_name":       "APP_NAME",
	"server.version":        "APP_VERSION",
	"server.allowed_origin": "ALLOWED_ORIGIN",
	"server.environment":    "ENVIRONMENT",
	"upstream.base_url":     "FMP_BASE_URL",
	"upstream.api_key":      "FMP_API_KEY",
	"upstream.ticker":       "FMP_TICKER",
	"upstream.period":       "FMP_PERIOD",
	"upstream.timeout":      "FMP_TIMEOUT",
	"upstream.rate_limit":   "FMP_RATE_LIMIT",
	"database.url":          "DATABASE_URL",
	"logging.level":         "LOG_LEVEL",
	"logging.format":        "LOG_FORMAT",
	"rate_limit.max":        "RATE_LIMIT_MAX",
	"rate_limit.expiration": "RATE_LIMIT_EXPIRATION",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.app_name", "Financial Data API")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("upstream.base_url", "https://financialmodelingprep.com/api/v3")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.ticker", "AAPL")
	v.SetDefault("upstream.period", "annual")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("upstream.rate_limit", 5)
	v.SetDefault("database.url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("rate_limit.max", 100)
	v.SetDefault("rate_limit.expiration", "1m")
}

// Load carga el archivo .env (si existe) y luego las variables de entorno
func Load() (*Config, error) {
	// Si no hay .env se usan solo las variables del entorno
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Upstream.APIKey == "" {
		return errors.New("FMP_API_KEY is required")
	}
	if cfg.Upstream.BaseURL == "" {
		return errors.New("FMP_BASE_URL must not be empty")
	}
	if cfg.Upstream.Timeout <= 0 {
		return errors.New("FMP_TIMEOUT must be positive")
	}
	if cfg.Upstream.RateLimit <= 0 {
		return errors.New("FMP_RATE_LIMIT must be positive")
	}
	if cfg.Server.AllowedOrigin == "" {
		return errors.New("ALLOWED_ORIGIN must not be empty")
	}
	return nil
}

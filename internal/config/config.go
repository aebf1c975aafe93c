// Package config loads application settings from an optional .env file and
// the process environment. The resulting Config is passed explicitly to the
// components that need it; nothing reads the environment at call time.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is used when JWT_SECRET is unset so local development
// works out of the box. Running with it is reported by Warnings.
const DefaultJWTSecret = "dev_secret"

// OTELConfig holds OpenTelemetry tracing settings.
type OTELConfig struct {
	Enabled     bool    `mapstructure:"OTEL_ENABLED"`
	Endpoint    string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	ServiceName string  `mapstructure:"OTEL_SERVICE_NAME"`
	SampleRatio float64 `mapstructure:"OTEL_TRACES_SAMPLER_ARG"`
}

// Config holds the application configuration.
type Config struct {
	// Server
	Port            string        `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	APIBasePath     string        `mapstructure:"API_BASE_PATH"`
	SwaggerEnabled  bool          `mapstructure:"SWAGGER_ENABLED"`
	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `mapstructure:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	// Store
	DBDriver       string        `mapstructure:"DB_DRIVER"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	SQLitePath     string        `mapstructure:"SQLITE_PATH"`
	StoreTimeout   time.Duration `mapstructure:"STORE_TIMEOUT"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`

	// Auth
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost int           `mapstructure:"BCRYPT_COST"`

	// Edge protection
	RateRPS            float64       `mapstructure:"RATE_RPS"`
	RateBurst          int           `mapstructure:"RATE_BURST"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	EnableHSTS         bool          `mapstructure:"ENABLE_HSTS"`
	HSTSMaxAge         time.Duration `mapstructure:"HSTS_MAX_AGE"`

	OTEL OTELConfig `mapstructure:",squash"`
}

var defaults = map[string]any{
	"PORT":             "8080",
	"GIN_MODE":         "release",
	"API_BASE_PATH":    "/",
	"SWAGGER_ENABLED":  false,
	"READ_TIMEOUT":     "15s",
	"WRITE_TIMEOUT":    "20s",
	"IDLE_TIMEOUT":     "60s",
	"SHUTDOWN_TIMEOUT": "10s",

	"LOG_LEVEL":  "info",
	"LOG_PRETTY": false,

	"DB_DRIVER":         "postgres",
	"DATABASE_URL":      "",
	"SQLITE_PATH":       "catalog.db",
	"STORE_TIMEOUT":     "5s",
	"DB_MAX_OPEN_CONNS": 10,

	"JWT_SECRET":  "",
	"TOKEN_TTL":   "168h",
	"BCRYPT_COST": 10,

	"RATE_RPS":             10.0,
	"RATE_BURST":           20,
	"CORS_ALLOWED_ORIGINS": "",
	"ENABLE_HSTS":          false,
	"HSTS_MAX_AGE":         "4320h",

	"OTEL_ENABLED":                false,
	"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
	"OTEL_EXPORTER_OTLP_INSECURE": true,
	"OTEL_SERVICE_NAME":           "game-catalog",
	"OTEL_TRACES_SAMPLER_ARG":     1.0,
}

// Load reads configuration from the .env file in dir (if present) and from
// environment variables, which take precedence. Defaults are applied for
// unset keys, then the result is normalized and validated.
func Load(dir string) (Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}


func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.GinMode = strings.ToLower(strings.TrimSpace(c.GinMode))
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	c.APIBasePath = normalizeBasePath(c.APIBasePath)
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive durations")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be > 0")
	}
	if c.DBDriver == "sqlite" && strings.TrimSpace(c.SQLitePath) == "" {
		return errors.New("SQLITE_PATH must not be empty when DB_DRIVER=sqlite")
	}
	if c.DBMaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be > 0")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}
	if c.RateRPS < 0 {
		return errors.New("RATE_RPS must be >= 0")
	}
	if c.RateBurst < 1 {
		return errors.New("RATE_BURST must be >= 1")
	}
	if c.HSTSMaxAge < 0 {
		return errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if c.OTEL.SampleRatio < 0 || c.OTEL.SampleRatio > 1 {
		return errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	return nil
}

// EffectiveJWTSecret returns the configured secret or the development default.
func (c Config) EffectiveJWTSecret() string {
	if s := strings.TrimSpace(c.JWTSecret); s != "" {
		return s
	}
	return DefaultJWTSecret
}

// StoreConfigured reports whether a backing store can be opened.
// SQLite always can; Postgres needs DATABASE_URL.
func (c Config) StoreConfigured() bool {
	if c.DBDriver == "sqlite" {
		return true
	}
	return c.DatabaseURL != ""
}

// Warnings lists configuration conditions that are tolerated but should be
// fixed outside local development.
func (c Config) Warnings() []string {
	var out []string
	if strings.TrimSpace(c.JWTSecret) == "" {
		out = append(out, "JWT_SECRET is not set; using the default development secret. Set JWT_SECRET for production.")
	}
	if !c.StoreConfigured() {
		out = append(out, "DATABASE_URL is not set; store-backed routes will answer 503 until it is configured.")
	}
	return out
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas, dropping blanks.
func (c Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures a leading '/' and strips a trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// emptyDir returns a directory without a .env file so only env vars apply.
func emptyDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(emptyDir(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.APIBasePath != "/" {
		t.Fatalf("server defaults unexpected: %+v", cfg)
	}
	if cfg.DBDriver != "postgres" || cfg.StoreTimeout != 5*time.Second || cfg.DBMaxOpenConns != 10 {
		t.Fatalf("store defaults unexpected: %+v", cfg)
	}
	if cfg.TokenTTL != 7*24*time.Hour || cfg.BcryptCost != 10 {
		t.Fatalf("auth defaults unexpected: ttl=%v cost=%d", cfg.TokenTTL, cfg.BcryptCost)
	}
	if cfg.RateRPS != 10 || cfg.RateBurst != 20 {
		t.Fatalf("rate defaults unexpected: %v/%d", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.OTEL.Enabled || cfg.OTEL.ServiceName != "game-catalog" || cfg.OTEL.SampleRatio != 1 {
		t.Fatalf("otel defaults unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_EnvOverridesAndNormalization(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "weird")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("API_BASE_PATH", "api/v1/")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "test.db")
	t.Setenv("STORE_TIMEOUT", "250ms")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")

	cfg, err := Load(emptyDir(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.GinMode != "release" || cfg.LogLevel != "warn" {
		t.Fatalf("normalization failed: %+v", cfg)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != "test.db" || cfg.StoreTimeout != 250*time.Millisecond {
		t.Fatalf("store overrides failed: %+v", cfg)
	}
	if cfg.EffectiveJWTSecret() != "s3cret" || cfg.TokenTTL != time.Hour || cfg.BcryptCost != 4 {
		t.Fatalf("auth overrides failed: %+v", cfg)
	}
	if want := []string{"https://a.com", "http://b"}; !reflect.DeepEqual(cfg.AllowedOrigins(), want) {
		t.Fatalf("AllowedOrigins = %#v; want %#v", cfg.AllowedOrigins(), want)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.SampleRatio != 0.25 {
		t.Fatalf("otel overrides failed: %+v", cfg.OTEL)
	}
	if len(cfg.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", cfg.Warnings())
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "PORT=7070\nJWT_SECRET=fromfile\nDATABASE_URL=postgres://u:p@localhost/db\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" || cfg.JWTSecret != "fromfile" || !cfg.StoreConfigured() {
		t.Fatalf(".env values not applied: %+v", cfg)
	}

	// Environment wins over the file.
	t.Setenv("PORT", "6060")
	cfg, err = Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "6060" {
		t.Fatalf("env should override .env, got %q", cfg.Port)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		key, val, want string
	}{
		{"LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"DB_DRIVER", "mysql", "DB_DRIVER"},
		{"STORE_TIMEOUT", "0s", "STORE_TIMEOUT"},
		{"BCRYPT_COST", "2", "BCRYPT_COST"},
		{"RATE_RPS", "-1", "RATE_RPS"},
		{"RATE_BURST", "0", "RATE_BURST"},
		{"TOKEN_TTL", "-1h", "TOKEN_TTL"},
		{"DB_MAX_OPEN_CONNS", "0", "DB_MAX_OPEN_CONNS"},
		{"OTEL_TRACES_SAMPLER_ARG", "2", "OTEL_TRACES_SAMPLER_ARG"},
		{"READ_TIMEOUT", "0s", "timeouts"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load(emptyDir(t))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("%s=%s: got err=%v; want mention of %q", tc.key, tc.val, err, tc.want)
			}
		})
	}
}

func TestWarnings_DefaultSecretAndMissingStore(t *testing.T) {
	cfg := Config{DBDriver: "postgres"}
	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %v", w)
	}
	if cfg.EffectiveJWTSecret() != DefaultJWTSecret {
		t.Fatalf("expected default secret fallback")
	}
	if cfg.StoreConfigured() {
		t.Fatalf("postgres without DATABASE_URL must not be configured")
	}
	if !(Config{DBDriver: "sqlite"}).StoreConfigured() {
		t.Fatalf("sqlite is always configured")
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/":    "/api",
		" /v1// ":  "/v1",
		"///":      "/",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AppPort:           "5000",
		AppMode:           DebugMode,
		DatabaseURL:       "postgres://localhost/test",
		JWTSecret:         "secret",
		JWTExpiresIn:      time.Hour,
		AllowedOrigins:    []string{"http://localhost:5173"},
		BcryptCost:        10,
		RateLimitRequests: 5,
		RateLimitWindow:   time.Minute,
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// empty values are still "set" for LookupEnv, so only blank the ones parsed with a fallback
	for _, key := range []string{"JWT_EXPIRES_IN", "FRONTEND_ORIGIN", "TRUSTED_PROXIES", "RATE_LIMIT_ENABLED"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_PORT", "5000")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_MODE", DebugMode)
	t.Setenv("BCRYPT_COST", "10")

	cfg := LoadConfig()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Empty(t, cfg.TrustedProxies)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRES_IN", "7d")
	t.Setenv("FRONTEND_ORIGIN", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.10")

	cfg := LoadConfig()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.TrustedProxies)
}

func TestLoadConfig_BadDurationFailsValidation(t *testing.T) {
	t.Setenv("APP_PORT", "5000")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRES_IN", "soon")

	cfg := LoadConfig()
	assert.Zero(t, cfg.JWTExpiresIn)
	assert.ErrorContains(t, cfg.Validate(), "JWT_EXPIRES_IN")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.AppPort = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.AppPort = "70000" }, "invalid port"},
		{"unknown mode", func(c *Config) { c.AppMode = "staging" }, "APP_MODE"},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET is required"},
		{"default secret in release", func(c *Config) { c.AppMode = ReleaseMode }, "must be changed"},
		{"no origins", func(c *Config) { c.AllowedOrigins = nil }, "FRONTEND_ORIGIN"},
		{"origin without scheme", func(c *Config) {
			c.AllowedOrigins = []string{"http://localhost:5173", "localhost:5173"}
		}, "FRONTEND_ORIGIN: bad origin"},
		{"trusted proxies", func(c *Config) { c.TrustedProxies = []string{"10.0.0.0/8", "127.0.0.1"} }, ""},
		{"bad trusted proxy", func(c *Config) { c.TrustedProxies = []string{"proxy.internal"} }, "TRUSTED_PROXIES"},
		{"bcrypt cost", func(c *Config) { c.BcryptCost = 99 }, "BCRYPT_COST"},
		{"rate limit window", func(c *Config) {
			c.RateLimitEnabled = true
			c.RateLimitWindow = 0
		}, "RATE_LIMIT_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	d, err = ParseDuration("15m")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}

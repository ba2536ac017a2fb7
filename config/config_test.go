package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var configEnvVars = []string{
	"REPULENS_SERVER_PORT",
	"REPULENS_SERVER_ENVIRONMENT",
	"REPULENS_SERVER_ALLOWED_ORIGINS",
	"REPULENS_SERPAPI_API_KEY",
	"REPULENS_SERPAPI_BASE_URL",
	"REPULENS_SERPAPI_TIMEOUT",
	"REPULENS_RATELIMIT_PER_IP",
	"REPULENS_RATELIMIT_SERPAPI",
	"REPULENS_LOG_LEVEL",
	"REPULENS_LOG_FORMAT",
	"SERP_API",
}

// clearEnv unsets every variable Load reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "", cfg.SerpAPI.APIKey)
		assert.Equal(t, "https://serpapi.com", cfg.SerpAPI.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.SerpAPI.Timeout)
		assert.Equal(t, 100, cfg.RateLimit.PerIP)
		assert.Equal(t, 1000, cfg.RateLimit.SerpAPI)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REPULENS_SERVER_PORT", "9090")
		t.Setenv("REPULENS_SERVER_ENVIRONMENT", "production")
		t.Setenv("REPULENS_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("REPULENS_SERPAPI_API_KEY", "custom-api-key")
		t.Setenv("REPULENS_SERPAPI_BASE_URL", "https://custom.api.com")
		t.Setenv("REPULENS_SERPAPI_TIMEOUT", "5s")
		t.Setenv("REPULENS_RATELIMIT_PER_IP", "200")
		t.Setenv("REPULENS_RATELIMIT_SERPAPI", "2000")
		t.Setenv("REPULENS_LOG_LEVEL", "debug")
		t.Setenv("REPULENS_LOG_FORMAT", "console")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Environment)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "custom-api-key", cfg.SerpAPI.APIKey)
		assert.Equal(t, "https://custom.api.com", cfg.SerpAPI.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.SerpAPI.Timeout)
		assert.Equal(t, 200, cfg.RateLimit.PerIP)
		assert.Equal(t, 2000, cfg.RateLimit.SerpAPI)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("falls back to legacy SERP_API variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERP_API", "legacy-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "legacy-key", cfg.SerpAPI.APIKey)
	})

	t.Run("prefixed key wins over legacy variable", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERP_API", "legacy-key")
		t.Setenv("REPULENS_SERPAPI_API_KEY", "new-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "new-key", cfg.SerpAPI.APIKey)
	})

	t.Run("fails validation for unknown environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REPULENS_SERVER_ENVIRONMENT", "staging")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REPULENS_RATELIMIT_PER_IP", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		t.Chdir(t.TempDir())

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables and skips comments", func(t *testing.T) {
		t.Chdir(t.TempDir())

		envContent := `
# Comment line
TEST_VAR_1=value1

# TEST_COMMENTED=should_not_load
TEST_VAR_2=value2
`
		require.NoError(t, os.WriteFile(".env", []byte(envContent), 0644))
		for _, key := range []string{"TEST_VAR_1", "TEST_VAR_2", "TEST_COMMENTED"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		require.NoError(t, loadEnvFile())

		assert.Equal(t, "value1", os.Getenv("TEST_VAR_1"))
		assert.Equal(t, "value2", os.Getenv("TEST_VAR_2"))
		assert.Empty(t, os.Getenv("TEST_COMMENTED"))
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("TEST_OVERRIDE", "existing-value")

		require.NoError(t, os.WriteFile(".env", []byte("TEST_OVERRIDE=new-value"), 0644))
		require.NoError(t, loadEnvFile())

		assert.Equal(t, "existing-value", os.Getenv("TEST_OVERRIDE"))
	})

	t.Run("SERP_API from .env is picked up by Load", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())

		require.NoError(t, os.WriteFile(".env", []byte("SERP_API=from-dotenv"), 0644))
		t.Cleanup(func() { os.Unsetenv("SERP_API") })

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.SerpAPI.APIKey)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Environment: "development"},
			SerpAPI:   SerpAPIConfig{BaseURL: "https://serpapi.com"},
			RateLimit: RateLimitConfig{PerIP: 100, SerpAPI: 1000},
		}
	}

	t.Run("validates successfully without an API key", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when base URL is empty", func(t *testing.T) {
		cfg := valid()
		cfg.SerpAPI.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty base URL")
		}
	})

	t.Run("fails for unknown environment", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Environment = "qa"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for unknown environment")
		}
	})

	t.Run("fails for negative outbound limit", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.SerpAPI = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative limit")
		}
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud", Format: "json"}))
}

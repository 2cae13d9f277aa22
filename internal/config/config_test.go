package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Rrens/focusbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutConfigFile(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoad_Defaults(t *testing.T) {
	withoutConfigFile(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, config.DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "focusbot", cfg.Mongo.Database)
	assert.Equal(t, 60*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "huggingface", cfg.LLM.DefaultProvider)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "deepseek/deepseek-r1-turbo", cfg.LLM.HuggingFace.Model)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins())
}

func TestLoad_EnvironmentAliases(t *testing.T) {
	withoutConfigFile(t)
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("SECRET_KEY", "alias-secret")
	t.Setenv("HF_TOKEN", "hf-token")
	t.Setenv("FRONTEND_ORIGIN", "https://focusbot.example")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "alias-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "hf-token", cfg.LLM.HuggingFace.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://focusbot.example"}, cfg.Server.AllowedOrigins())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Storage: config.StorageConfig{Driver: config.DriverMongo},
			Mongo:   config.MongoConfig{URI: "mongodb://localhost:27017"},
			Auth:    config.AuthConfig{JWTSecret: "secret", AccessTokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"valid", func(c *config.Config) {}, ""},
		{"missing secret", func(c *config.Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET_KEY"},
		{"missing mongo uri", func(c *config.Config) { c.Mongo.URI = "" }, "MONGO_URI"},
		{"postgres without dsn", func(c *config.Config) { c.Storage.Driver = config.DriverPostgres }, "DATABASE_URL"},
		{"postgres with url", func(c *config.Config) {
			c.Storage.Driver = config.DriverPostgres
			c.Database.URL = "postgres://localhost/focusbot"
		}, ""},
		{"unknown driver", func(c *config.Config) { c.Storage.Driver = "redis" }, "unknown storage driver"},
		{"zero ttl", func(c *config.Config) { c.Auth.AccessTokenTTL = 0 }, "access_token_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := config.DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Database: "focusbot", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/focusbot?sslmode=disable", c.DSN())

	c.URL = "postgres://override"
	assert.Equal(t, "postgres://override", c.DSN())
}

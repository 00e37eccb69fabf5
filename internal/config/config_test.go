package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "jobmatch")
	t.Setenv("DB_USER", "jobmatch")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", " 9090 ")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("RECOMMENDATION_CACHE_TTL", "2m")
	t.Setenv("MATCHING_WORKERS", "3")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "jobmatch", cfg.App.AppName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 3, cfg.Matching.Workers)
}

func TestLoad_ReportsEveryMissingKey(t *testing.T) {
	for _, k := range []string{"DB_HOST", "DB_NAME", "DB_USER", "JWT_ACCESS_SECRET"} {
		t.Setenv(k, "")
	}

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidConfig)
	for _, k := range []string{"DB_HOST", "DB_NAME", "DB_USER", "JWT_ACCESS_SECRET"} {
		assert.Contains(t, err.Error(), k)
	}
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_ConfigFileWithEnvOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "staging")

	path := filepath.Join(t.TempDir(), "jobmatch.yaml")
	body := "APP_NAME: matcher\nAPP_ENV: production\nMATCHING_WORKERS: 6\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "matcher", cfg.App.AppName)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, 6, cfg.Matching.Workers)
	assert.Zero(t, cfg.Redis.CacheTTL)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_NamesKeysByEnvVar(t *testing.T) {
	cfg := Config{
		App:      AppConfig{AppName: "jobmatch", Environment: "test", HTTPPort: "8080"},
		Log:      LogConfig{Level: "loud"},
		Database: DatabaseConfig{DBHost: "db", DBPort: "5432", DBName: "jobmatch", DBUser: "jobmatch", PoolMaxConns: -1},
		JWT:      JWTConfig{AccessSecret: "secret"},
		Matching: MatchingConfig{Workers: -2},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidConfig)
	for _, want := range []string{"LOG_LEVEL (oneof)", "DB_POOL_MAX_CONNS (gte)", "MATCHING_WORKERS (gte)"} {
		assert.Contains(t, err.Error(), want)
	}
	assert.NotContains(t, err.Error(), "Config.")
}

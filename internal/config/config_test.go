package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "resume-scorer")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "9000")

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.NotContains(t, err.Error(), "HTTP_PORT")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"JOB_PROFILES_PATH", "ANALYZE_WORKERS", "DB_HOST", "REDIS_HOST", "REDIS_TTL", "JWT_ACCESS_SECRET", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dataset/jobs.csv", cfg.Analysis.JobProfilesPath)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 10<<20, cfg.Analysis.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("JOB_PROFILES_PATH", "/data/jobs.csv")
	t.Setenv("ANALYZE_WORKERS", "8")
	t.Setenv("DB_HOST", "db")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("JWT_ACCESS_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "1h")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data/jobs.csv", cfg.Analysis.JobProfilesPath)
	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("ANALYZE_WORKERS", "-3")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 10<<20, cfg.Analysis.MaxUploadBytes)
}

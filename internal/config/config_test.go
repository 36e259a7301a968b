package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/app")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/app")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_BUCKET_NAME", "receipts")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "receipts", cfg.S3Bucket)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/app")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingDBConnectionString(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_CONNECTION_STRING", "")

	_, err := Load()
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 8080,
		"database_url": "postgres://localhost/resume_studio",
		"template": "modern",
		"dark": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/resume_studio", cfg.DatabaseURL)
	assert.Equal(t, "modern", cfg.Template)
	assert.True(t, cfg.Dark)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	cfg, err := LoadConfig(path)

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := Config{Port: 8080, Template: "classic"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := Config{Port: 70000}
		assert.ErrorContains(t, cfg.Validate(), "'port' out of range")
	})

	t.Run("unknown template", func(t *testing.T) {
		cfg := Config{Template: "brutalist"}
		assert.ErrorContains(t, cfg.Validate(), "unknown template")
	})

	t.Run("output is a file", func(t *testing.T) {
		file := writeConfigFile(t, `{}`)
		cfg := Config{Output: file}
		assert.ErrorContains(t, cfg.Validate(), "not a directory")
	})
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Template: "modern"}
	defaults := Config{Port: 8080, Template: "classic", Output: "./out"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 8080, merged.Port, "empty field takes default")
	assert.Equal(t, "modern", merged.Template, "explicit field wins")
	assert.Equal(t, "./out", merged.Output)
}

func TestNewAuthConfig(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		cfg, err := NewAuthConfig()

		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "JWT_SECRET is required")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		t.Setenv("BCRYPT_COST", "")
		t.Setenv("PASSWORD_PEPPER", "")

		cfg, err := NewAuthConfig()

		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Empty(t, cfg.Pepper)
	})

	t.Run("rejects out of range bcrypt cost", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("BCRYPT_COST", "4")

		cfg, err := NewAuthConfig()

		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "bcrypt cost out of range")
	})

	t.Run("rejects zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		t.Setenv("BCRYPT_COST", "")

		cfg, err := NewAuthConfig()

		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "at least 1 hour")
	})
}

func TestAuthConfig_PasswordRoundTrip(t *testing.T) {
	cfg := &AuthConfig{JWTSecret: "s", ExpirationHours: 24, BcryptCost: 10, Pepper: "pepper"}

	hash, err := cfg.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))

	// Pepper is part of the hashed input
	noPepper := &AuthConfig{BcryptCost: 10}
	assert.False(t, noPepper.VerifyPassword("correct horse battery", hash))
}

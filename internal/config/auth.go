// Package config - auth.go provides JWT and password hashing configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds configuration for JWT issuance and password hashing.
type AuthConfig struct {
	JWTSecret       string
	ExpirationHours int
	BcryptCost      int
	Pepper          string // optional global secret mixed into password hashing
}

// NewAuthConfig creates auth configuration from environment variables.
// It reads JWT_SECRET (required), JWT_EXPIRATION_HOURS (default: 24),
// BCRYPT_COST (default: 12) and optionally PASSWORD_PEPPER.
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &AuthConfig{
		JWTSecret:       secret,
		ExpirationHours: expirationHours,
		BcryptCost:      cost,
		Pepper:          os.Getenv("PASSWORD_PEPPER"), // empty if not set
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *AuthConfig) VerifyPassword(pw, storedHash string) bool {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	return err == nil
}

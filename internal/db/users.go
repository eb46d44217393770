package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/types"
)

// CreateUser inserts a new user and returns its ID. The password must
// already be hashed; this layer never sees plaintext credentials.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUserByEmail retrieves a user by email. Returns nil without error when
// no user exists.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	var user types.User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, premium, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Premium, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUser retrieves a user by ID. Returns nil without error when no user
// exists.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	var user types.User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, premium, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Premium, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SetPremium flips the premium flag for a user. Used by the billing webhook
// after a confirmed payment.
func (db *DB) SetPremium(ctx context.Context, userID uuid.UUID, premium bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET premium = $1, updated_at = NOW() WHERE id = $2`,
		premium, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set premium: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

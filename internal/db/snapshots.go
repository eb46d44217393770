package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/types"
)

// SaveSnapshot stores the user's resume together with the scores computed at
// save time. Each user has at most one snapshot; saving overwrites it.
func (db *DB) SaveSnapshot(ctx context.Context, userID uuid.UUID, resume *types.Resume, scores types.Scores) error {
	content, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_snapshots (user_id, content, scores)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET content = $2, scores = $3, saved_at = NOW()`,
		userID, content, scoresJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves the user's saved snapshot. Returns nil without
// error when the user has never saved.
func (db *DB) LoadSnapshot(ctx context.Context, userID uuid.UUID) (*types.ResumeSnapshot, error) {
	var (
		content []byte
		scores  []byte
		savedAt time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT content, scores, saved_at FROM resume_snapshots WHERE user_id = $1`,
		userID,
	).Scan(&content, &scores, &savedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snapshot := &types.ResumeSnapshot{SavedAt: savedAt}
	if err := json.Unmarshal(content, &snapshot.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	if err := json.Unmarshal(scores, &snapshot.Scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	return snapshot, nil
}

// DeleteSnapshot removes the user's saved snapshot if one exists.
func (db *DB) DeleteSnapshot(ctx context.Context, userID uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM resume_snapshots WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

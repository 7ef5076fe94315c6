package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/models"
)

// RecordSession deactivates every prior session record for (user, role) and
// inserts the new active one. Both steps run in one transaction so the
// at-most-one-active invariant holds under concurrent issuance.
func (r *AuthRepo) RecordSession(ctx context.Context, userID uuid.UUID, role models.Role, token string, eventType models.EventType) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`UPDATE session_events SET active = false WHERE user_id = $1 AND role = $2 AND active = true`,
		userID, role); err != nil {
		return fmt.Errorf("failed to deactivate prior sessions: %w", err)
	}

	event := &models.SessionEvent{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        role,
		AccessToken: token,
		EventType:   eventType,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if _, err = tx.NamedExecContext(ctx, `
		INSERT INTO session_events (id, user_id, role, access_token, event_type, active, created_at)
		VALUES (:id, :user_id, :role, :access_token, :event_type, :active, :created_at)
	`, event); err != nil {
		return fmt.Errorf("failed to insert session event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ActiveToken returns the token of the currently active record for
// (user, role, eventType), or an empty string when none exists
func (r *AuthRepo) ActiveToken(ctx context.Context, userID uuid.UUID, role models.Role, eventType models.EventType) (string, error) {
	var token string
	err := r.db.GetContext(ctx, &token, `
		SELECT access_token FROM session_events
		WHERE user_id = $1 AND role = $2 AND event_type = $3 AND active = true
	`, userID, role, eventType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get active token: %w", err)
	}
	return token, nil
}

// IsTokenActive reports whether an active record matches all three fields
// exactly
func (r *AuthRepo) IsTokenActive(ctx context.Context, userID uuid.UUID, role models.Role, token string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(1) FROM session_events
		WHERE user_id = $1 AND role = $2 AND access_token = $3 AND active = true
	`, userID, role, token)
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return count > 0, nil
}

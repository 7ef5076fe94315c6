package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/models"
)

// AddChild inserts a child record under a parent identity
func (r *AuthRepo) AddChild(ctx context.Context, child *models.Child) error {
	if child.ID == uuid.Nil {
		child.ID = uuid.New()
	}
	now := time.Now()
	child.CreatedAt = now
	child.UpdatedAt = now

	query := `
		INSERT INTO children (id, user_id, first_name, last_name, gender, birth_date, created_at, updated_at)
		VALUES (:id, :user_id, :first_name, :last_name, :gender, :birth_date, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, child); err != nil {
		return fmt.Errorf("failed to insert child: %w", err)
	}
	return nil
}

// GetChildren lists the children linked to a parent identity
func (r *AuthRepo) GetChildren(ctx context.Context, parentID uuid.UUID) ([]models.Child, error) {
	var children []models.Child
	query := `
		SELECT id, user_id, first_name, last_name, gender, birth_date, created_at, updated_at
		FROM children
		WHERE user_id = $1
		ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &children, query, parentID); err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

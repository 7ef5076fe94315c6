package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
)

const userColumns = `id, mobile_no, first_name, last_name, email, is_active, registered_by, registered_by_id, created_at, updated_at`

// GetUserByMobile retrieves a user by mobile number, filtered to identities
// holding the given role. Requesting PARENT matches MOTHER or FATHER.
func (r *AuthRepo) GetUserByMobile(ctx context.Context, mobileNo string, role models.Role) (*models.User, error) {
	query, args, err := sqlx.In(`
		SELECT `+userColumns+`
		FROM users u
		WHERE u.mobile_no = ?
		  AND EXISTS (
			SELECT 1 FROM user_roles r
			WHERE r.user_id = u.id AND r.role IN (?)
		  )
	`, mobileNo, role.StorageRoles())
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}
	query = r.db.Rebind(query)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := r.loadAssociations(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := r.loadAssociations(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user with its role set and preschool links in one
// transaction
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (
			id, mobile_no, first_name, last_name, email, is_active,
			registered_by, registered_by_id, created_at, updated_at
		) VALUES (
			:id, :mobile_no, :first_name, :last_name, :email, :is_active,
			:registered_by, :registered_by_id, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	for _, role := range user.Roles {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			user.ID, role); err != nil {
			return fmt.Errorf("failed to insert user role: %w", err)
		}
	}

	for _, link := range user.Preschools {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO user_preschools (user_id, preschool_id, preschool_name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			user.ID, link.PreschoolID, link.PreschoolName); err != nil {
			return fmt.Errorf("failed to insert preschool link: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateProfile updates the mutable profile fields
func (r *AuthRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET first_name = :first_name, last_name = :last_name, email = :email, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	return nil
}

// AddRole adds a role to an identity, idempotently
func (r *AuthRepo) AddRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, role)
	if err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}

// AddPreschoolLink links an identity to a preschool, idempotently
func (r *AuthRepo) AddPreschoolLink(ctx context.Context, userID uuid.UUID, link models.PreschoolLink) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_preschools (user_id, preschool_id, preschool_name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		userID, link.PreschoolID, link.PreschoolName)
	if err != nil {
		return fmt.Errorf("failed to add preschool link: %w", err)
	}
	return nil
}

// GetPasswordHash returns the bcrypt hash stored for (user, role), or an
// empty string when no password has been set for that role
func (r *AuthRepo) GetPasswordHash(ctx context.Context, userID uuid.UUID, role models.Role) (string, error) {
	query, args, err := sqlx.In(
		`SELECT password_hash FROM user_passwords WHERE user_id = ? AND role IN (?)`,
		userID, role.StorageRoles())
	if err != nil {
		return "", fmt.Errorf("failed to build password query: %w", err)
	}
	query = r.db.Rebind(query)

	var hash string
	if err := r.db.GetContext(ctx, &hash, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// UpsertPassword stores the hash under the role key, replacing any prior one
func (r *AuthRepo) UpsertPassword(ctx context.Context, userID uuid.UUID, role models.Role, hash string) error {
	query := `
		INSERT INTO user_passwords (user_id, role, password_hash, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, role)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, userID, role, hash, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert password: %w", err)
	}
	return nil
}

func (r *AuthRepo) loadAssociations(ctx context.Context, user *models.User) error {
	if err := r.db.SelectContext(ctx, &user.Roles,
		`SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, user.ID); err != nil {
		return fmt.Errorf("failed to load user roles: %w", err)
	}

	if err := r.db.SelectContext(ctx, &user.Preschools,
		`SELECT preschool_id, preschool_name FROM user_preschools WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("failed to load preschool links: %w", err)
	}
	return nil
}

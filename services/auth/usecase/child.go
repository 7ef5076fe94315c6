package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
)

// AddChild records a child under the parent identity
func (u *AuthUC) AddChild(ctx context.Context, parentID string, input *models.ChildInput) (*models.Child, error) {
	if input.FirstName == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	userID, err := uuid.Parse(parentID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", domain.ErrBadRequest)
	}

	parent, err := u.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !parent.HasRole(models.RoleParent) {
		return nil, fmt.Errorf("%s is not a parent: %w", userID, domain.ErrForbidden)
	}

	child := &models.Child{
		ID:        uuid.New(),
		UserID:    parent.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		BirthDate: input.BirthDate,
	}
	if err := u.authRepo.AddChild(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// GetChildren lists the children recorded under the parent identity
func (u *AuthUC) GetChildren(ctx context.Context, parentID string) ([]models.Child, error) {
	userID, err := uuid.Parse(parentID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", domain.ErrBadRequest)
	}
	return u.authRepo.GetChildren(ctx, userID)
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/logger"
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth/domain"
)

// RegisterUser creates a new identity with its role set, optional children,
// and a welcome notification. Registration conflicts when the mobile number
// already holds any of the requested roles.
func (u *AuthUC) RegisterUser(ctx context.Context, input *models.CreateUserInput) (*models.User, error) {
	if input.MobileNo == "" || input.FirstName == "" || len(input.Roles) == 0 {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	for _, role := range input.Roles {
		if !role.Valid() || role == models.RoleParent {
			return nil, fmt.Errorf("unknown user type %q: %w", role, domain.ErrBadRequest)
		}
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	for _, role := range input.Roles {
		existing, err := u.authRepo.GetUserByMobile(ctx, mobileNo, role)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("user already registered as %s: %w", role, domain.ErrConflict)
		}
	}

	user := &models.User{
		MobileNo:  mobileNo,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Roles:     input.Roles,
	}

	if input.CreatedBy != "" {
		operatorID, err := uuid.Parse(input.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("invalid created_by id: %w", domain.ErrBadRequest)
		}
		operator, err := u.authRepo.GetUserByID(ctx, operatorID)
		if err != nil {
			return nil, fmt.Errorf("operator not found: %w", err)
		}
		user.RegisteredByID = &operator.ID
		if len(operator.Roles) > 0 {
			role := operator.Roles[0]
			user.RegisteredBy = &role
		}
	}

	if err := u.authRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	for _, childInput := range input.Children {
		child := &models.Child{
			ID:        uuid.New(),
			UserID:    user.ID,
			FirstName: childInput.FirstName,
			LastName:  childInput.LastName,
			Gender:    childInput.Gender,
			BirthDate: childInput.BirthDate,
		}
		if err := u.authRepo.AddChild(ctx, child); err != nil {
			return nil, err
		}
	}

	if err := u.authGW.NotifyWelcome(ctx, mobileNo, user.FirstName); err != nil {
		logger.Warn("Failed to dispatch welcome notification",
			logger.String("mobile_no", mobileNo),
			logger.Err(err))
	}

	return user, nil
}

// CreateTeacher registers a teacher under a preschool. A mobile number that
// already holds the teacher role gains a link to the preschool instead of a
// second identity.
func (u *AuthUC) CreateTeacher(ctx context.Context, input *models.CreateTeacherInput) (*models.User, error) {
	if input.PreschoolID == "" || input.MobileNo == "" || input.FirstName == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	preschoolID, err := uuid.Parse(input.PreschoolID)
	if err != nil {
		return nil, fmt.Errorf("invalid preschool id: %w", domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	preschool, err := u.authRepo.GetUserByID(ctx, preschoolID)
	if err != nil {
		return nil, fmt.Errorf("preschool not found: %w", err)
	}
	if !preschool.HasRole(models.RolePreschool) {
		return nil, fmt.Errorf("%s is not a preschool: %w", preschoolID, domain.ErrForbidden)
	}

	link := models.PreschoolLink{
		PreschoolID:   preschool.ID,
		PreschoolName: preschool.FirstName,
	}

	existing, err := u.authRepo.GetUserByMobile(ctx, mobileNo, models.RoleTeacher)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := u.authRepo.AddPreschoolLink(ctx, existing.ID, link); err != nil {
			return nil, err
		}
		existing.Preschools = append(existing.Preschools, link)
		return existing, nil
	}

	registeredBy := models.RolePreschool
	user := &models.User{
		MobileNo:       mobileNo,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Roles:          []models.Role{models.RoleTeacher},
		Preschools:     []models.PreschoolLink{link},
		RegisteredBy:   &registeredBy,
		RegisteredByID: &preschool.ID,
	}
	if err := u.authRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := u.authGW.NotifyWelcome(ctx, mobileNo, user.FirstName); err != nil {
		logger.Warn("Failed to dispatch welcome notification",
			logger.String("mobile_no", mobileNo),
			logger.Err(err))
	}

	return user, nil
}

// GetUserByID returns the identity with its roles and preschool links
func (u *AuthUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", domain.ErrBadRequest)
	}
	return u.authRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the non-empty profile fields and returns the updated
// identity
func (u *AuthUC) UpdateProfile(ctx context.Context, id string, input *models.UpdateProfileInput) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Email != "" {
		user.Email = input.Email
	}

	if err := u.authRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

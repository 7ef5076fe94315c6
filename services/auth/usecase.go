package auth

import (
	"context"

	"github.com/careloop/careloop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/careloop/careloop/services/auth AuthUC

// AuthUC is the session lifecycle and user management usecase interface
type AuthUC interface {
	// session lifecycle
	LoginStatus(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error)
	OTPVerification(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error)
	SetPassword(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error)
	SignIn(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error)
	AutoSignIn(ctx context.Context, input *models.AutoSignInput) (*models.LoginResponse, error)

	// user management
	RegisterUser(ctx context.Context, input *models.CreateUserInput) (*models.User, error)
	CreateTeacher(ctx context.Context, input *models.CreateTeacherInput) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, input *models.UpdateProfileInput) (*models.User, error)

	// children
	AddChild(ctx context.Context, parentID string, input *models.ChildInput) (*models.Child, error)
	GetChildren(ctx context.Context, parentID string) ([]models.Child, error)
}

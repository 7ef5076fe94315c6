package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/careloop/careloop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/careloop/careloop/services/auth AuthRepo

// AuthRepo defines the credential store, session ledger, and user graph
// persistence interface
type AuthRepo interface {
	// identities
	GetUserByMobile(ctx context.Context, mobileNo string, role models.Role) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, user *models.User) error
	AddRole(ctx context.Context, userID uuid.UUID, role models.Role) error
	AddPreschoolLink(ctx context.Context, userID uuid.UUID, link models.PreschoolLink) error

	// per-role credentials
	GetPasswordHash(ctx context.Context, userID uuid.UUID, role models.Role) (string, error)
	UpsertPassword(ctx context.Context, userID uuid.UUID, role models.Role, hash string) error

	// pending OTP ciphertext, one per identity
	SaveOTP(ctx context.Context, mobileNo, ciphertext string) error
	GetOTP(ctx context.Context, mobileNo string) (string, error)
	ClearOTP(ctx context.Context, mobileNo string) error

	// session ledger
	RecordSession(ctx context.Context, userID uuid.UUID, role models.Role, token string, eventType models.EventType) error
	ActiveToken(ctx context.Context, userID uuid.UUID, role models.Role, eventType models.EventType) (string, error)
	IsTokenActive(ctx context.Context, userID uuid.UUID, role models.Role, token string) (bool, error)

	// children
	AddChild(ctx context.Context, child *models.Child) error
	GetChildren(ctx context.Context, parentID uuid.UUID) ([]models.Child, error)
}

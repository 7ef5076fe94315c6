package auth

import (
	"context"

	"github.com/careloop/careloop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/careloop/careloop/services/auth AuthGW

// AuthGW defines the outbound collaborator interface: fire-and-forget
// notifications and entitlement resolution
type AuthGW interface {
	NotifyOTP(ctx context.Context, mobileNo, code string, role models.Role) error
	NotifyWelcome(ctx context.Context, mobileNo, firstName string) error
	ListProductTypes(ctx context.Context, preschoolIDs []string) ([]string, error)
}

package usecase

import (
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/pkg/otp"
	"github.com/careloop/careloop/services/auth"
)

// AuthUC orchestrates the session lifecycle: OTP issuance and verification,
// password management, token issuance, and auto sign-in. Collaborators are
// injected; nothing is cached across calls, every operation re-reads store
// state.
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	codec    *otp.Codec
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		codec:    otp.NewCodec(cfg.OTP.SecretKey),
		cfg:      cfg,
	}
}

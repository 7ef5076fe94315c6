package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/careloop/careloop/internal/pkg/jwt"
	"github.com/careloop/careloop/internal/pkg/logger"
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/pkg/otp"
	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth/domain"
)

// LoginStatus is the sign-in entry point: it decides whether the caller must
// verify an OTP (no password set for this role yet) or enter their password.
func (u *AuthUC) LoginStatus(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error) {
	if input.MobileNo == "" || input.UserType == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("unknown user type %q: %w", input.UserType, domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobileNo, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("couldn't find your account: %w", err)
	}

	hash, err := u.authRepo.GetPasswordHash(ctx, user.ID, input.UserType)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		if err := u.issueOTP(ctx, mobileNo, input.UserType); err != nil {
			return nil, err
		}
		return &models.LoginResponse{State: models.StateOTPRequired, Message: models.MsgOTPSent}, nil
	}

	return &models.LoginResponse{State: models.StatePasswordRequired, Message: models.MsgEnterPassword}, nil
}

// OTPVerification checks the supplied code against the pending OTP. A wrong
// code is a normal negative outcome, not an error; an expired code is
// FORBIDDEN. On success a short-lived set-password token is minted and
// recorded. The pending OTP is cleared after every completed verification
// attempt, whatever the outcome.
func (u *AuthUC) OTPVerification(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error) {
	if input.MobileNo == "" || input.UserType == "" || input.OTP == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("unknown user type %q: %w", input.UserType, domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobileNo, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("couldn't find your account: %w", err)
	}

	ciphertext, err := u.authRepo.GetOTP(ctx, mobileNo)
	if err != nil {
		return nil, fmt.Errorf("your otp has expired: %w", domain.ErrForbidden)
	}

	payload, err := u.codec.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	result, err := u.codec.Verify(payload, input.OTP, time.Now())

	// One verification attempt consumes the OTP regardless of outcome.
	if clearErr := u.authRepo.ClearOTP(ctx, mobileNo); clearErr != nil {
		logger.Warn("Failed to clear OTP after verification attempt",
			logger.String("mobile_no", mobileNo),
			logger.Err(clearErr))
	}

	if err != nil {
		return nil, err
	}

	switch result {
	case otp.ResultInvalid:
		return &models.LoginResponse{State: models.StateOTPRequired, Message: models.MsgOTPNotValid}, nil
	case otp.ResultExpired:
		return nil, fmt.Errorf("your otp has expired: %w", domain.ErrForbidden)
	}

	token, expiresAt, err := jwtpkg.GenerateSetPasswordToken(user.ID, mobileNo, input.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := u.authRepo.RecordSession(ctx, user.ID, input.UserType, token, models.EventSetPassword); err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		State:       models.StateAuthenticated,
		Message:     models.MsgSetPassword,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// ForgotPassword re-issues an OTP for a role that already has a password set
func (u *AuthUC) ForgotPassword(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error) {
	if input.MobileNo == "" || input.UserType == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("unknown user type %q: %w", input.UserType, domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobileNo, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("couldn't find your account: %w", err)
	}

	hash, err := u.authRepo.GetPasswordHash(ctx, user.ID, input.UserType)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, fmt.Errorf("setup your password first: %w", domain.ErrNotFound)
	}

	if err := u.issueOTP(ctx, mobileNo, input.UserType); err != nil {
		return nil, err
	}
	return &models.LoginResponse{State: models.StateOTPRequired, Message: models.MsgOTPSent}, nil
}

// SetPassword hashes and stores the password under the role key, then issues
// a long-lived access token
func (u *AuthUC) SetPassword(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error) {
	if input.MobileNo == "" || input.UserType == "" || input.Password == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("unknown user type %q: %w", input.UserType, domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobileNo, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("couldn't find your account: %w", domain.ErrUnprocessable)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := storageRole(user, input.UserType)
	if err := u.authRepo.UpsertPassword(ctx, user.ID, role, string(hash)); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, mobileNo, input.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := u.authRepo.RecordSession(ctx, user.ID, input.UserType, token, models.EventSetPassword); err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		State:       models.StateAuthenticated,
		Message:     models.MsgLoginSuccessful,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// SignIn verifies the password for the requested role and issues a
// long-lived access token together with the caller's entitlements
func (u *AuthUC) SignIn(ctx context.Context, input *models.SignInput) (*models.LoginResponse, error) {
	if input.MobileNo == "" || input.UserType == "" || input.Password == "" {
		return nil, fmt.Errorf("missing parameters: %w", domain.ErrBadRequest)
	}
	if !input.UserType.Valid() {
		return nil, fmt.Errorf("unknown user type %q: %w", input.UserType, domain.ErrBadRequest)
	}
	mobileNo, err := utils.ValidateMobileNo(input.MobileNo)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	user, err := u.authRepo.GetUserByMobile(ctx, mobileNo, input.UserType)
	if err != nil {
		return nil, fmt.Errorf("couldn't find your account: %w", err)
	}

	hash, err := u.authRepo.GetPasswordHash(ctx, user.ID, input.UserType)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, fmt.Errorf("setup your password first: %w", domain.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, mobileNo, input.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := u.authRepo.RecordSession(ctx, user.ID, input.UserType, token, models.EventLogin); err != nil {
		return nil, err
	}

	entitlements, err := u.resolveEntitlements(ctx, user, input.UserType)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		State:        models.StateAuthenticated,
		Message:      models.MsgLoginSuccessful,
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		User:         user,
		Entitlements: entitlements,
	}, nil
}

// AutoSignIn accepts a previously issued token if and only if it is the
// currently active LOGIN token for (user, role). The token is returned
// unrotated; a token superseded by a later login always fails.
func (u *AuthUC) AutoSignIn(ctx context.Context, input *models.AutoSignInput) (*models.LoginResponse, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized)
	}

	activeToken, err := u.authRepo.ActiveToken(ctx, userID, input.UserType, models.EventLogin)
	if err != nil {
		return nil, err
	}
	if activeToken == "" || activeToken != input.AccessToken {
		return nil, fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized)
	}

	user, err := u.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized)
	}

	entitlements, err := u.resolveEntitlements(ctx, user, input.UserType)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		State:        models.StateAuthenticated,
		Message:      models.MsgLoginSuccessful,
		AccessToken:  input.AccessToken,
		User:         user,
		Entitlements: entitlements,
	}, nil
}

// issueOTP generates a fresh code, stores its encrypted payload against the
// identity (overwriting any prior OTP), and dispatches it out-of-band. The
// notification is fire-and-forget; a publish failure does not fail the
// sign-in flow.
func (u *AuthUC) issueOTP(ctx context.Context, mobileNo string, role models.Role) error {
	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}

	ciphertext, err := u.codec.Encrypt(otp.NewPayload(code, time.Now()))
	if err != nil {
		return err
	}
	if err := u.authRepo.SaveOTP(ctx, mobileNo, ciphertext); err != nil {
		return err
	}

	if err := u.authGW.NotifyOTP(ctx, mobileNo, code, role); err != nil {
		logger.Warn("Failed to dispatch OTP notification",
			logger.String("mobile_no", mobileNo),
			logger.Err(err))
	}

	return nil
}

// resolveEntitlements returns the deduplicated product grants for the role
// context: a preschool's own grants, or the grants of the preschools a
// teacher is linked to. Other roles carry no entitlements.
func (u *AuthUC) resolveEntitlements(ctx context.Context, user *models.User, role models.Role) ([]string, error) {
	var preschoolIDs []string
	switch {
	case role == models.RolePreschool && user.HasRole(models.RolePreschool):
		preschoolIDs = []string{user.ID.String()}
	case role == models.RoleTeacher && user.HasRole(models.RoleTeacher):
		for _, link := range user.Preschools {
			preschoolIDs = append(preschoolIDs, link.PreschoolID.String())
		}
	}
	if len(preschoolIDs) == 0 {
		return nil, nil
	}

	products, err := u.authGW.ListProductTypes(ctx, preschoolIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	unique := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Strings(unique)
	return unique, nil
}

// storageRole maps the requested role onto the concrete stored role for
// credential writes: a PARENT request writes against the MOTHER or FATHER
// role the identity actually holds.
func storageRole(user *models.User, requested models.Role) models.Role {
	if requested != models.RoleParent {
		return requested
	}
	for _, candidate := range requested.StorageRoles() {
		for _, r := range user.Roles {
			if r == candidate {
				return candidate
			}
		}
	}
	return requested
}

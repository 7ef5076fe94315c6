package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careloop/careloop/internal/pkg/logger"
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth"
)

// AuthHandler handles HTTP requests for the sign-in lifecycle
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// LoginStatus handles the sign-in entry point: it tells the client whether to
// show the OTP screen or the password screen
func (h *AuthHandler) LoginStatus(c echo.Context) error {
	var input models.SignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginStatus(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Login status check failed",
			logger.String("mobile_no", input.MobileNo),
			logger.String("user_type", string(input.UserType)),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to check login status")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// OTPVerification handles OTP verification requests
func (h *AuthHandler) OTPVerification(c echo.Context) error {
	var input models.SignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.OTPVerification(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("OTP verification failed",
			logger.String("mobile_no", input.MobileNo),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ForgotPassword re-issues an OTP so the caller can reset their password
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input models.SignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.ForgotPassword(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Forgot password failed",
			logger.String("mobile_no", input.MobileNo),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to process forgot password")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// SetPassword stores the caller's password and signs them in
func (h *AuthHandler) SetPassword(c echo.Context) error {
	var input models.SignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SetPassword(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Set password failed",
			logger.String("mobile_no", input.MobileNo),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to set password")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// SignIn handles password sign-in requests
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input models.SignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SignIn(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Sign in failed",
			logger.String("mobile_no", input.MobileNo),
			logger.String("user_type", string(input.UserType)),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to sign in")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// AutoSignIn accepts a previously issued token and restores the session
func (h *AuthHandler) AutoSignIn(c echo.Context) error {
	var input models.AutoSignInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.AutoSignIn(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Auto sign in failed",
			logger.String("user_id", input.UserID),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to sign in")
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

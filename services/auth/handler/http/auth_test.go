package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
	"github.com/careloop/careloop/services/auth/mocks"
)

func newAuthTestContext(t *testing.T, body string) (*mocks.MockAuthUC, echo.Context, *httptest.ResponseRecorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockUC := mocks.NewMockAuthUC(ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockUC, c, rec
}

func TestLoginStatusHandler_Success(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "user_type": "PARENT"}`)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		LoginStatus(gomock.Any(), &models.SignInput{MobileNo: "9876543210", UserType: models.RoleParent}).
		Return(&models.LoginResponse{State: models.StateOTPRequired, Message: models.MsgOTPSent}, nil)

	err := handler.LoginStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(models.StateOTPRequired), data["state"])
}

func TestLoginStatusHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad request", err: fmt.Errorf("missing parameters: %w", domain.ErrBadRequest), wantStatus: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("couldn't find your account: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "forbidden", err: fmt.Errorf("your otp has expired: %w", domain.ErrForbidden), wantStatus: http.StatusForbidden},
		{name: "unauthorized", err: fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized), wantStatus: http.StatusUnauthorized},
		{name: "conflict", err: fmt.Errorf("already registered: %w", domain.ErrConflict), wantStatus: http.StatusConflict},
		{name: "unprocessable", err: fmt.Errorf("couldn't find your account: %w", domain.ErrUnprocessable), wantStatus: http.StatusUnprocessableEntity},
		{name: "internal", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "user_type": "PARENT"}`)
			handler := NewAuthHandler(mockUC)

			mockUC.EXPECT().LoginStatus(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			err := handler.LoginStatus(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
		})
	}
}

func TestLoginStatusHandler_InternalErrorMessageIsGeneric(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "user_type": "PARENT"}`)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().LoginStatus(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("pq: connection refused"))

	require.NoError(t, handler.LoginStatus(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Failed to check login status", response["error"])
}

func TestOTPVerificationHandler_Success(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "user_type": "PARENT", "otp": "1234"}`)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		OTPVerification(gomock.Any(), &models.SignInput{MobileNo: "9876543210", UserType: models.RoleParent, OTP: "1234"}).
		Return(&models.LoginResponse{
			State:       models.StateAuthenticated,
			Message:     models.MsgSetPassword,
			AccessToken: "set-password-token",
		}, nil)

	require.NoError(t, handler.OTPVerification(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "set-password-token", data["access_token"])
}

func TestSignInHandler_WrongPassword(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "user_type": "PARENT", "password": "wrong"}`)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().SignIn(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("credentials are not valid: %w", domain.ErrUnauthorized))

	require.NoError(t, handler.SignIn(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAutoSignInHandler_Success(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"user_id": "6a1b0f6e-0000-0000-0000-000000000001", "user_type": "PARENT", "access_token": "tok"}`)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().
		AutoSignIn(gomock.Any(), &models.AutoSignInput{
			UserID:      "6a1b0f6e-0000-0000-0000-000000000001",
			UserType:    models.RoleParent,
			AccessToken: "tok",
		}).
		Return(&models.LoginResponse{
			State:       models.StateAuthenticated,
			Message:     models.MsgLoginSuccessful,
			AccessToken: "tok",
		}, nil)

	require.NoError(t, handler.AutoSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetPasswordHandler_InvalidPayload(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{not json`)
	handler := NewAuthHandler(mockUC)

	require.NoError(t, handler.SetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
	"github.com/careloop/careloop/services/auth/mocks"
)

func TestRegisterUserHandler_Success(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "first_name": "Asha", "roles": ["MOTHER"]}`)
	handler := NewUserHandler(mockUC)

	mockUC.EXPECT().
		RegisterUser(gomock.Any(), &models.CreateUserInput{
			MobileNo:  "9876543210",
			FirstName: "Asha",
			Roles:     []models.Role{models.RoleMother},
		}).
		Return(&models.User{ID: uuid.New(), MobileNo: "9876543210", FirstName: "Asha"}, nil)

	require.NoError(t, handler.RegisterUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "first_name": "Asha", "roles": ["MOTHER"]}`)
	handler := NewUserHandler(mockUC)

	mockUC.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("user already registered as MOTHER: %w", domain.ErrConflict))

	require.NoError(t, handler.RegisterUser(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetUserHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewUserHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6a1b0f6e-0000-0000-0000-000000000001")

	mockUC.EXPECT().GetUserByID(gomock.Any(), "6a1b0f6e-0000-0000-0000-000000000001").
		Return(nil, fmt.Errorf("user not found: %w", domain.ErrNotFound))

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileHandler_UsesTokenIdentity(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"first_name": "Aisha"}`)
	handler := NewUserHandler(mockUC)

	userID := uuid.New()
	c.Set("user_id", userID)

	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), userID.String(), &models.UpdateProfileInput{FirstName: "Aisha"}).
		Return(&models.User{ID: userID, FirstName: "Aisha"}, nil)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfileHandler_MissingIdentity(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"first_name": "Aisha"}`)
	handler := NewUserHandler(mockUC)
	_ = mockUC

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddChildHandler_Success(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"first_name": "Meera", "gender": "F", "birth_date": "2021-06-15"}`)
	handler := NewUserHandler(mockUC)

	userID := uuid.New()
	c.Set("user_id", userID)

	mockUC.EXPECT().
		AddChild(gomock.Any(), userID.String(), &models.ChildInput{
			FirstName: "Meera",
			Gender:    "F",
			BirthDate: "2021-06-15",
		}).
		Return(&models.Child{ID: uuid.New(), UserID: userID, FirstName: "Meera"}, nil)

	require.NoError(t, handler.AddChild(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetChildrenHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewUserHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)

	mockUC.EXPECT().GetChildren(gomock.Any(), userID.String()).
		Return([]models.Child{{ID: uuid.New(), UserID: userID, FirstName: "Meera"}}, nil)

	require.NoError(t, handler.GetChildren(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTeacherHandler_DefaultsPreschoolFromToken(t *testing.T) {
	mockUC, c, rec := newAuthTestContext(t, `{"mobile_no": "9876543210", "first_name": "Priya"}`)
	handler := NewUserHandler(mockUC)

	preschoolID := uuid.New()
	c.Set("user_id", preschoolID)

	mockUC.EXPECT().
		CreateTeacher(gomock.Any(), &models.CreateTeacherInput{
			PreschoolID: preschoolID.String(),
			MobileNo:    "9876543210",
			FirstName:   "Priya",
		}).
		Return(&models.User{ID: uuid.New(), FirstName: "Priya"}, nil)

	require.NoError(t, handler.CreateTeacher(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

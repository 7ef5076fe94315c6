package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careloop/careloop/internal/pkg/logger"
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth"
)

// UserHandler handles HTTP requests for user and child management
type UserHandler struct {
	authUC auth.AuthUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUC auth.AuthUC) *UserHandler {
	return &UserHandler{authUC: authUC}
}

// RegisterUser handles platform user registration requests
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input models.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("User registration failed",
			logger.String("mobile_no", input.MobileNo),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// CreateTeacher handles teacher registration under a preschool
func (h *UserHandler) CreateTeacher(c echo.Context) error {
	var input models.CreateTeacherInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if input.PreschoolID == "" {
		if id, ok := c.Get("user_id").(uuid.UUID); ok {
			input.PreschoolID = id.String()
		}
	}

	user, err := h.authUC.CreateTeacher(c.Request().Context(), &input)
	if err != nil {
		logger.Warn("Teacher registration failed",
			logger.String("mobile_no", input.MobileNo),
			logger.String("preschool_id", input.PreschoolID),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to register teacher")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Teacher registered successfully", user)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.authUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// GetProfile returns the authenticated caller's identity
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetUserByID(c.Request().Context(), userID.String())
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the authenticated caller's profile fields
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID.String(), &input)
	if err != nil {
		logger.Warn("Profile update failed",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// AddChild records a child under the authenticated parent
func (h *UserHandler) AddChild(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.ChildInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	child, err := h.authUC.AddChild(c.Request().Context(), userID.String(), &input)
	if err != nil {
		logger.Warn("Add child failed",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return respondError(c, err, "Failed to add child")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Child added successfully", child)
}

// GetChildren lists the authenticated parent's children
func (h *UserHandler) GetChildren(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	children, err := h.authUC.GetChildren(c.Request().Context(), userID.String())
	if err != nil {
		return respondError(c, err, "Failed to retrieve children")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Children retrieved successfully", children)
}

package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careloop/careloop/internal/pkg/middleware"
	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth"
	"github.com/careloop/careloop/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	authRepo    auth.AuthRepo
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	authRepo auth.AuthRepo,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		authRepo:    authRepo,
		cfg:         cfg,
	}
}

// sessionGuard rejects tokens that are no longer the active session record
// for the caller. A structurally valid JWT superseded by a later sign-in
// fails here. Runs after the JWT middleware, which sets user_id and
// user_role.
func (h *Handler) sessionGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			role, _ := c.Get("user_role").(string)
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")

			active, err := h.authRepo.IsTokenActive(c.Request().Context(), userID, models.Role(role), token)
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Failed to validate session")
			}
			if !active {
				return utils.UnauthorizedResponse(c, "session is no longer active")
			}
			return next(c)
		}
	}
}

// RegisterRoutes wires the HTTP routes. The sign-in entry points are public;
// everything else requires a bearer token backed by an active ledger entry.
// Set-password is gated so only the short-lived token minted after OTP
// verification (or a live session) can change a credential.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/login-status", h.authHandler.LoginStatus)
	authGroup.POST("/otp-verification", h.authHandler.OTPVerification)
	authGroup.POST("/forgot-password", h.authHandler.ForgotPassword)
	authGroup.POST("/sign-in", h.authHandler.SignIn)
	authGroup.POST("/auto-sign-in", h.authHandler.AutoSignIn)

	authProtected := e.Group("/auth", middleware.JWTAuthMiddleware(h.cfg.JWT), h.sessionGuard())
	authProtected.POST("/set-password", h.authHandler.SetPassword)

	protected := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT), h.sessionGuard())
	protected.POST("", h.userHandler.RegisterUser)
	protected.GET("/:id", h.userHandler.GetUser)
	protected.GET("/me", h.userHandler.GetProfile)
	protected.PUT("/me", h.userHandler.UpdateProfile)
	protected.POST("/me/children", h.userHandler.AddChild)
	protected.GET("/me/children", h.userHandler.GetChildren)
	protected.POST("/teachers", h.userHandler.CreateTeacher)
}

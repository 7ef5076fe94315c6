package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/careloop/careloop/internal/utils"
	"github.com/careloop/careloop/services/auth/domain"
)

// respondError maps a usecase error onto the HTTP surface. Domain sentinel
// errors carry their message through; anything else is an internal fault and
// the message stays generic.
func respondError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, domain.ErrUnprocessable):
		return utils.UnprocessableEntityResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}

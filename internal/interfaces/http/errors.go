package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/domain"
	"github.com/jhoicas/gestor-sucursal/pkg/logger"
)

// apiError error ya traducido a status y código, producido por la capa HTTP (cuerpo, query).
type apiError struct {
	status int
	body   dto.ErrorResponse
}

func (e *apiError) Error() string { return e.body.Message }

func badRequest(code, msg string) error {
	return &apiError{status: fiber.StatusBadRequest, body: dto.ErrorResponse{Code: code, Message: msg}}
}

// errorMapping orden de evaluación: los errores más específicos primero.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrTenantRequired, fiber.StatusBadRequest, "TENANT_REQUIRED"},
	{domain.ErrInvalidTimeRange, fiber.StatusBadRequest, "INVALID_TIME_RANGE"},
	{domain.ErrActivityTypeNotInCatalog, fiber.StatusBadRequest, "ACTIVITY_TYPE_NOT_IN_CATALOG"},
	{domain.ErrPasswordTooShort, fiber.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "PASSWORD_MISMATCH"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrFirstLoginPending, fiber.StatusForbidden, "FIRST_LOGIN_REQUIRED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrEmployeeNumberExists, fiber.StatusConflict, "EMPLOYEE_NUMBER_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// resolveError status y cuerpo para err. Lo no reconocido es 500 sin exponer el detalle.
func resolveError(err error) (int, dto.ErrorResponse) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, ae.body
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message}
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, dto.ErrorResponse{Code: m.code, Message: err.Error()}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

// ErrorHandler traduce los errores que devuelven los handlers a dto.ErrorResponse.
// Los 5xx se registran con el request id.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		status, body := resolveError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("request_id", c.Locals("requestid")).
				Msg("request failed")
		}
		return c.Status(status).JSON(body)
	}
}

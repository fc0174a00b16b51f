package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeInvalidBody  = "INVALID_BODY"
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeInternal     = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// writeError traduce errores de dominio a HTTP. Los de infraestructura se devuelven
// tal cual para que el ErrorHandler de la app los registre y responda 500.
func writeError(c *fiber.Ctx, err error) error {
	msg := domain.Message(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, msg)
	case errors.Is(err, domain.ErrConflict):
		return errorJSON(c, fiber.StatusConflict, CodeConflict, msg)
	case errors.Is(err, domain.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, msg)
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, msg)
	default:
		return err
	}
}

// ErrorHandler último recurso de la app: errores de fiber conservan su status,
// el resto se registra y se responde como INTERNAL sin exponer el detalle.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return errorJSON(c, fe.Code, codeForStatus(fe.Code), fe.Message)
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "error interno")
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeValidation
	case fiber.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}

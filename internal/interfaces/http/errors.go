package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
)

// writeError traduce los errores de dominio a {code, message} con su status HTTP.
// Los errores sin sentinel conocido se responden como 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrConfirmationRequired):
		status, code = fiber.StatusPreconditionRequired, "CONFIRMATION_REQUIRED"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message(err)})
}

// message quita el prefijo del sentinel ("entrada inválida: notes es obligatorio" → "notes es obligatorio").
func message(err error) string {
	msg := err.Error()
	for _, s := range []error{domain.ErrInvalidInput, domain.ErrDuplicate, domain.ErrForbidden} {
		if rest, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// confirmed lee ?confirm=true en las operaciones de borrado.
func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm", false)
}

// sendFile responde un documento descargable.
func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

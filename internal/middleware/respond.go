package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// Success returns the standard API success envelope.
func Success(c fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  status,
		"data":    data,
		"message": message,
	})
}

// FromError maps a service error onto the standard error envelope using the
// application error taxonomy.
func FromError(c fiber.Ctx, err error) error {
	return ErrorResponse(c, apperror.HTTPStatus(err), apperror.Code(err), apperror.Message(err))
}

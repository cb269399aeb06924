package utils

import (
	"github.com/gofiber/fiber/v2"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/validator"
)

// Response - envelope for every API response. Failures carry Message,
// successes carry Data and optionally Count for list endpoints.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
	Message string      `json:"message,omitempty"`
}

func SendSuccess(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func SendList(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// SendToken - authentication response with the signed session token
func SendToken(c *fiber.Ctx, status int, token string, data interface{}) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Token:   token,
		Data:    data,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.IsAppError(err); ok {
		return c.Status(appErr.StatusCode).JSON(Response{
			Success: false,
			Message: appErr.Message,
		})
	}

	// Field-level validation errors collapse into one 400 message
	if verrs, ok := err.(govalidator.ValidationErrors); ok {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Message: validator.FormatErrors(verrs),
		})
	}

	// Unknown error - return 500 with a generic message; detail stays
	// in the server log
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Success: false,
		Message: errors.ErrInternalServer.Message,
	})
}

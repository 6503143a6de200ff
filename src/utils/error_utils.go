// error_utils.go
package utils

import (
	"errors"

	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/models"

	"github.com/gofiber/fiber/v2"
)

// exposeDetails adds error details to 500 responses (development only).
var exposeDetails bool

// SetExposeErrorDetails is called once at startup from the server config.
func SetExposeErrorDetails(on bool) {
	exposeDetails = on
}

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
	})
}

// HandleInternalError logs err and answers 500 with a generic message.
func HandleInternalError(c *fiber.Ctx, message string, err error) error {
	logger.Log.WithError(err).WithField("path", c.Path()).Error("❌ " + message)
	resp := models.ErrorResponse{Error: message}
	if exposeDetails && err != nil {
		resp.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// HandleValidationErrors answers 400 with every message at once.
func HandleValidationErrors(c *fiber.Ctx, messages []string, details interface{}) error {
	body := fiber.Map{"errors": messages}
	if details != nil {
		body["fieldErrors"] = details
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// ErrorHandler is the app-wide fallback. fiber errors keep their status,
// anything else becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return HandleError(c, fe.Code, fe.Message)
	}
	return HandleInternalError(c, "Something went wrong!", err)
}

package controllers

import (
	"errors"

	"Backend-FormFlow/src/services/admins"
	"Backend-FormFlow/src/services/forms"
	"Backend-FormFlow/src/services/schema"
	"Backend-FormFlow/src/services/submission"
	"Backend-FormFlow/src/services/uploads"
	"Backend-FormFlow/src/services/validation"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// known service errors and the response they map to
var errorMappings = []errorMapping{
	{forms.ErrNotFound, fiber.StatusNotFound, "Form not found"},
	{forms.ErrDeletedNotFound, fiber.StatusNotFound, "Deleted form not found"},
	{forms.ErrConflict, fiber.StatusConflict, "Form was modified by another request. Reload it and try again"},
	{submission.ErrFormNotFound, fiber.StatusNotFound, "Form not found"},
	{submission.ErrFormInactive, fiber.StatusBadRequest, "Form is not active"},
	{submission.ErrNotFound, fiber.StatusNotFound, "Submission not found"},
	{submission.ErrInvalidFormID, fiber.StatusBadRequest, "Invalid form ID"},
	{submission.ErrFormIDRequired, fiber.StatusBadRequest, "formId is required"},
	{uploads.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "File too large"},
	{admins.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid credentials"},
	{admins.ErrAdminExists, fiber.StatusBadRequest, "Admin user already exists"},
	{utils.ErrMissingSecret, fiber.StatusInternalServerError, "Server configuration error. Please contact administrator."},
}

// respondError แปลง error จาก service เป็น HTTP response
func respondError(c *fiber.Ctx, fallback string, err error) error {
	var schemaErr *schema.Error
	if errors.As(err, &schemaErr) {
		return utils.HandleValidationErrors(c, []string{schemaErr.Error()}, []fiber.Map{{
			"path":    schemaErr.Path,
			"message": schemaErr.Message,
		}})
	}

	var answerErrs validation.Errors
	if errors.As(err, &answerErrs) {
		return utils.HandleValidationErrors(c, answerErrs.Messages(), answerErrs)
	}

	if errors.Is(err, submission.ErrInvalidDate) {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return utils.HandleError(c, m.status, m.message)
		}
	}
	return utils.HandleInternalError(c, fallback, err)
}

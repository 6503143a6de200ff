package controllers

import (
	"context"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
)

// FormService is implemented by forms.Service.
type FormService interface {
	List(ctx context.Context, filter models.FormListFilter) ([]models.Form, error)
	Get(ctx context.Context, id string) (*models.Form, error)
	Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error)
	Update(ctx context.Context, id string, req models.UpdateFormRequest) (*models.Form, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (*models.Form, error)
}

type FormController struct {
	Forms FormService
}

func NewFormController(forms FormService) *FormController {
	return &FormController{Forms: forms}
}

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), 5*time.Second)
}

// GetAllForms godoc
// @Summary      List forms
// @Description  Newest first. Soft-deleted forms are hidden unless includeDeleted=true
// @Tags         forms
// @Produce      json
// @Param        activeOnly      query  bool  false  "Only active forms"
// @Param        includeDeleted  query  bool  false  "Include soft-deleted forms"
// @Success      200  {array}   models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func (fc *FormController) GetAllForms(c *fiber.Ctx) error {
	var filter models.FormListFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := fc.Forms.List(ctx, filter)
	if err != nil {
		return respondError(c, "Error fetching forms", err)
	}
	return c.JSON(list)
}

// GetFormByID godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (fc *FormController) GetFormByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.Forms.Get(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, "Error fetching form", err)
	}
	return c.JSON(form)
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Field names are derived from labels when missing or invalid
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateFormRequest true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func (fc *FormController) CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msgs := utils.ValidateStruct(req); msgs != nil {
		return utils.HandleValidationErrors(c, msgs, nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.Forms.Create(ctx, req)
	if err != nil {
		return respondError(c, "Error creating form", err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Partial update. Changing the field list bumps the version
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "Form ID"
// @Param        body body models.UpdateFormRequest true "Changes"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func (fc *FormController) UpdateForm(c *fiber.Ctx) error {
	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msgs := utils.ValidateStruct(req); msgs != nil {
		return utils.HandleValidationErrors(c, msgs, nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.Forms.Update(ctx, c.Params("id"), req)
	if err != nil {
		return respondError(c, "Error updating form", err)
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Soft-delete a form
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func (fc *FormController) DeleteForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := fc.Forms.Delete(ctx, c.Params("id")); err != nil {
		return respondError(c, "Error deleting form", err)
	}
	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}

// RestoreForm godoc
// @Summary      Restore a soft-deleted form
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/restore [post]
func (fc *FormController) RestoreForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	form, err := fc.Forms.Restore(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, "Error restoring form", err)
	}
	return c.JSON(fiber.Map{"message": "Form restored successfully", "form": form})
}

package controllers

import (
	"context"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminService is implemented by admins.Service.
type AdminService interface {
	Login(ctx context.Context, creds models.AdminCredentials) (*models.LoginResponse, error)
	Create(ctx context.Context, creds models.AdminCredentials) (*models.AdminUser, error)
}

type AdminController struct {
	Admins AdminService
}

func NewAdminController(admins AdminService) *AdminController {
	return &AdminController{Admins: admins}
}

func parseCredentials(c *fiber.Ctx) (models.AdminCredentials, []string) {
	var creds models.AdminCredentials
	if err := c.BodyParser(&creds); err != nil {
		return creds, []string{"Invalid input: " + err.Error()}
	}
	return creds, utils.ValidateStruct(creds)
}

// Login godoc
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body models.AdminCredentials true "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /admin/login [post]
func (ac *AdminController) Login(c *fiber.Ctx) error {
	creds, msgs := parseCredentials(c)
	if msgs != nil {
		return utils.HandleValidationErrors(c, msgs, nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := ac.Admins.Login(ctx, creds)
	if err != nil {
		return respondError(c, "Server error during login", err)
	}
	return c.JSON(resp)
}

// CreateAdmin godoc
// @Summary      Create another admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.AdminCredentials true "Credentials"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /admin/create [post]
func (ac *AdminController) CreateAdmin(c *fiber.Ctx) error {
	creds, msgs := parseCredentials(c)
	if msgs != nil {
		return utils.HandleValidationErrors(c, msgs, nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	admin, err := ac.Admins.Create(ctx, creds)
	if err != nil {
		return respondError(c, "Server error creating admin user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Admin user created successfully",
		"username": admin.Username,
	})
}

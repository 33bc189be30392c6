package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/users/dto"
	"absenku_backend/internals/features/users/service"
	helper "absenku_backend/internals/helpers"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

var validate = validator.New()

// POST /api/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.Service.Create(m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil didaftarkan", dto.ToUserResponse(m))
}

// GET /api/users/:contact_id
func (ctrl *UserController) GetUserByContact(c *fiber.Ctx) error {
	contactID := c.Params("contact_id")
	m, err := ctrl.Service.ByContact(contactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "User ditemukan", dto.ToUserResponse(m))
}

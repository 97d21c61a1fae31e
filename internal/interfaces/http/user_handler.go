package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/usecase"
)

// UserHandler consultas de usuarios (protegido, solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetByID obtiene un usuario por id (sin hash de contraseña).
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// List lista todos los usuarios.
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una categoría por id.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// List lista todas las categorías.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// Update actualización parcial de una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalErr(c, err)
	}
	if !deleted {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.FirstName == "" || in.LastName == "" || in.StoreID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "firstName, lastName y storeId son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un empleado por id.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "empleado no encontrado")
	}
	return c.JSON(out)
}

// List empleados; acepta ?storeId=N.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// Update actualización parcial de un empleado.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "empleado no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina un empleado.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalErr(c, err)
	}
	if !deleted {
		return notFound(c, "empleado no encontrado")
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado"})
}

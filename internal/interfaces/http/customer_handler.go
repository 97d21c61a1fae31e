package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP para Customer (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.FirstName == "" || in.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "firstName y lastName son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un cliente por id.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// List lista todos los clientes. Con ?phone=N busca por teléfono exacto.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if phone := c.Query("phone"); phone != "" {
		out, err := h.uc.GetByPhone(phone)
		if err != nil {
			return internalErr(c, err)
		}
		if out == nil {
			return notFound(c, "cliente no encontrado")
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// Update actualización parcial de un cliente.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina un cliente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return internalErr(c, err)
	}
	if !deleted {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}

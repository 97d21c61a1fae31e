package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido). Los
// listados aceptan ?storeId=N y los filtros por estado y tipo van en la
// ruta.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden con sus líneas
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden y líneas"
// @Success      201   {object}  dto.OrderWithItemsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.StoreID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "storeId es requerido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la orden requiere al menos una línea"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidOrderStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderWithItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda (0 = todas)"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// ListByStatus órdenes con el estado de la ruta; 400 si el estado no existe.
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.Params("status"), storeIDQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrderStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
		}
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// ListByType órdenes del canal de la ruta (in_store | online).
func (h *OrderHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.uc.ListByType(c.Params("type"), storeIDQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: err.Error()})
		}
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// Recent últimas órdenes por fecha descendente; acepta ?limit=N.
func (h *OrderHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	out, err := h.uc.Recent(limit, storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrderStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: err.Error()})
		}
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/domain"
)

// PurchaseOrderHandler maneja las peticiones HTTP para PurchaseOrder
// (protegido, solo admin y manager).
type PurchaseOrderHandler struct {
	uc *orders.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *orders.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Orden de compra y líneas"
// @Success      201   {object}  dto.PurchaseOrderWithItemsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.StoreID <= 0 || in.SupplierName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "storeId y supplierName son requeridos"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la orden de compra requiere al menos una línea"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene la orden de compra con sus líneas.
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "orden de compra no encontrada")
	}
	return c.JSON(out)
}

// List órdenes de compra; acepta ?storeId=N.
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus cambia el estado (texto libre).
func (h *PurchaseOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdatePurchaseOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(id, in.Status)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "orden de compra no encontrada")
	}
	return c.JSON(out)
}

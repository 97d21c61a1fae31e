package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/domain"
)

// InventoryHandler maneja las consultas y mutaciones de inventario
// (protegido). Todas las rutas de listado aceptan ?storeId=N.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Pareja producto × tienda"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID <= 0 || in.StoreID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId y storeId son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe inventario para ese producto en esa tienda"})
		}
		return internalErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda (0 = toda la cadena)"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda (0 = toda la cadena)"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// ByProduct existencias de un producto. Con ?storeId=N devuelve el
// registro único de la pareja; sin filtro, uno por tienda.
func (h *InventoryHandler) ByProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return badID(c)
	}
	storeID := storeIDQuery(c)
	if storeID > 0 {
		out, err := h.uc.ByProductAndStore(productID, storeID)
		if err != nil {
			return internalErr(c, err)
		}
		if out == nil {
			return notFound(c, "sin inventario para ese producto en esa tienda")
		}
		return c.JSON(out)
	}
	out, err := h.uc.ByProduct(productID)
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// Update actualización parcial de un registro de inventario.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return badID(c)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return internalErr(c, err)
	}
	if out == nil {
		return notFound(c, "registro de inventario no encontrado")
	}
	return c.JSON(out)
}

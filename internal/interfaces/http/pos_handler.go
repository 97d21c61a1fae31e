package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/pos"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/domain"
)

// POSHandler maneja el punto de venta (protegido). El carrito se escoge
// con la cabecera X-Terminal-ID; sin cabecera se usa la terminal por
// defecto.
type POSHandler struct {
	uc      *pos.POSUseCase
	storeUC *usecase.StoreUseCase
	pdfGen  pos.ReceiptPDFGenerator
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *pos.POSUseCase, storeUC *usecase.StoreUseCase, pdfGen pos.ReceiptPDFGenerator) *POSHandler {
	return &POSHandler{uc: uc, storeUC: storeUC, pdfGen: pdfGen}
}

// GetCart godoc
// @Summary      Estado del carrito de la terminal
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [get]
func (h *POSHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetCart(terminalID(c)))
}

// AddToCart godoc
// @Summary      Agregar producto al carrito
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/items [post]
func (h *POSHandler) AddToCart(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId y quantity deben ser positivos"})
	}
	out, err := h.uc.AddToCart(terminalID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "producto no encontrado")
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INACTIVE_PRODUCT", Message: "el producto no está activo"})
		}
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// SetQuantity fija la cantidad de una línea; 0 la elimina.
func (h *POSHandler) SetQuantity(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return badID(c)
	}
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(terminalID(c), productID, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "el producto no está en el carrito")
		}
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// RemoveFromCart quita la línea del producto.
func (h *POSHandler) RemoveFromCart(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return badID(c)
	}
	out, err := h.uc.RemoveFromCart(terminalID(c), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "el producto no está en el carrito")
		}
		return internalErr(c, err)
	}
	return c.JSON(out)
}

// ClearCart vacía el carrito de la terminal.
func (h *POSHandler) ClearCart(c *fiber.Ctx) error {
	return c.JSON(h.uc.ClearCart(terminalID(c)))
}

// Checkout godoc
// @Summary      Cerrar la venta del carrito
// @Description  Crea la orden (completed, in_store) con impuesto sobre el
// @Description  subtotal y vacía el carrito. Con ?format=pdf devuelve el
// @Description  recibo en PDF.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        format  query  string  false  "pdf para recibo en PDF"
// @Param        body    body   dto.CheckoutRequest  true  "Tienda, cajero y pago"
// @Success      201  {object}  dto.ReceiptResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	receipt, err := h.uc.Checkout(terminalID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: err.Error()})
		case errors.Is(err, domain.ErrNoStoreSelected):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_STORE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidOrderStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalErr(c, err)
	}

	if c.Query("format") == "pdf" {
		store, err := h.storeUC.GetByID(receipt.Order.StoreID)
		if err != nil {
			return internalErr(c, err)
		}
		pdfBytes, err := h.pdfGen.Generate(receipt, store)
		if err != nil {
			return internalErr(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+receipt.Order.OrderNumber+`.pdf"`)
		return c.Status(fiber.StatusCreated).Send(pdfBytes)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

package dto

import "github.com/shopspring/decimal"

// AddToCartRequest entrada para agregar un producto al carrito. Si el
// producto ya está en el carrito, se suma la cantidad a la línea.
type AddToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CartResponse carrito completo con subtotal.
type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

// CheckoutRequest entrada para cerrar la venta. El teléfono del cliente
// es opcional; si coincide con un cliente registrado la orden queda
// asociada a él.
type CheckoutRequest struct {
	StoreID       int64  `json:"storeId" validate:"required,gt=0"`
	EmployeeID    int64  `json:"employeeId"`
	CustomerPhone string `json:"customerPhone"`
	PaymentMethod string `json:"paymentMethod"`
}

// ReceiptResponse resultado del checkout: la orden creada con sus líneas
// y el desglose subtotal / impuesto / total.
type ReceiptResponse struct {
	Order    OrderWithItemsResponse `json:"order"`
	Subtotal decimal.Decimal        `json:"subtotal"`
	Tax      decimal.Decimal        `json:"tax"`
	Total    decimal.Decimal        `json:"total"`
}

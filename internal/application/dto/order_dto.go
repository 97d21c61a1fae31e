package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// OrderItemRequest línea de entrada al crear una orden.
type OrderItemRequest struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateOrderRequest entrada para crear una orden con sus líneas. El
// número de orden se genera en el caso de uso si viene vacío.
type CreateOrderRequest struct {
	OrderNumber   string             `json:"orderNumber"`
	CustomerID    int64              `json:"customerId"`
	EmployeeID    int64              `json:"employeeId"`
	StoreID       int64              `json:"storeId" validate:"required,gt=0"`
	Status        string             `json:"status"`
	Type          string             `json:"type"`
	Total         decimal.Decimal    `json:"total"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod string             `json:"paymentMethod"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest entrada para el cambio de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
}

// OrderResponse salida de una orden (sin líneas).
type OrderResponse struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerID    int64           `json:"customerId"`
	EmployeeID    int64           `json:"employeeId"`
	StoreID       int64           `json:"storeId"`
	OrderDate     time.Time       `json:"orderDate"`
	Status        string          `json:"status"`
	Type          string          `json:"type"`
	Total         decimal.Decimal `json:"total"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
}

// OrderWithItemsResponse orden completa con sus líneas.
type OrderWithItemsResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

// ToOrderResponse convierte la entidad a su DTO de salida.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		EmployeeID:    o.EmployeeID,
		StoreID:       o.StoreID,
		OrderDate:     o.OrderDate,
		Status:        string(o.Status),
		Type:          string(o.Type),
		Total:         o.Total,
		Tax:           o.Tax,
		Discount:      o.Discount,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
	}
}

// ToOrderItemResponse convierte una línea a su DTO de salida.
func ToOrderItemResponse(it *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Total:     it.Total,
		Discount:  it.Discount,
	}
}

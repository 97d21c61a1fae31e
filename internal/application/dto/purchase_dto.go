package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// PurchaseOrderItemRequest línea de entrada de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	PONumber             string                     `json:"poNumber"`
	StoreID              int64                      `json:"storeId" validate:"required,gt=0"`
	SupplierName         string                     `json:"supplierName" validate:"required"`
	ExpectedDeliveryDate time.Time                  `json:"expectedDeliveryDate"`
	Status               string                     `json:"status"`
	Total                decimal.Decimal            `json:"total"`
	Notes                string                     `json:"notes"`
	Items                []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdatePurchaseOrderStatusRequest cambio de estado (texto libre).
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PurchaseOrderItemResponse línea de una orden de compra.
type PurchaseOrderItemResponse struct {
	ID              int64           `json:"id"`
	PurchaseOrderID int64           `json:"purchaseOrderId"`
	ProductID       int64           `json:"productId"`
	Quantity        int             `json:"quantity"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	Total           decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID                   int64           `json:"id"`
	PONumber             string          `json:"poNumber"`
	StoreID              int64           `json:"storeId"`
	SupplierName         string          `json:"supplierName"`
	OrderDate            time.Time       `json:"orderDate"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	Status               string          `json:"status"`
	Total                decimal.Decimal `json:"total"`
	Notes                string          `json:"notes"`
}

// PurchaseOrderWithItemsResponse orden de compra completa con líneas.
type PurchaseOrderWithItemsResponse struct {
	PurchaseOrderResponse
	Items []PurchaseOrderItemResponse `json:"items"`
}

// ToPurchaseOrderResponse convierte la entidad a su DTO de salida.
func ToPurchaseOrderResponse(po *entity.PurchaseOrder) *PurchaseOrderResponse {
	if po == nil {
		return nil
	}
	return &PurchaseOrderResponse{
		ID:                   po.ID,
		PONumber:             po.PONumber,
		StoreID:              po.StoreID,
		SupplierName:         po.SupplierName,
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		Status:               po.Status,
		Total:                po.Total,
		Notes:                po.Notes,
	}
}

// ToPurchaseOrderItemResponse convierte una línea a su DTO de salida.
func ToPurchaseOrderItemResponse(it *entity.PurchaseOrderItem) PurchaseOrderItemResponse {
	return PurchaseOrderItemResponse{
		ID:              it.ID,
		PurchaseOrderID: it.PurchaseOrderID,
		ProductID:       it.ProductID,
		Quantity:        it.Quantity,
		CostPrice:       it.CostPrice,
		Total:           it.Total,
	}
}

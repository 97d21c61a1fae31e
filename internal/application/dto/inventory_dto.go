package dto

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// CreateInventoryRequest entrada para crear un registro de inventario
// (pareja producto × tienda).
type CreateInventoryRequest struct {
	ProductID     int64 `json:"productId" validate:"required,gt=0"`
	StoreID       int64 `json:"storeId" validate:"required,gt=0"`
	Quantity      int   `json:"quantity" validate:"min=0"`
	MinStockLevel int   `json:"minStockLevel" validate:"min=0"`
	MaxStockLevel int   `json:"maxStockLevel" validate:"min=0"`
}

// UpdateInventoryRequest actualización parcial de un registro.
type UpdateInventoryRequest struct {
	Quantity      *int `json:"quantity" validate:"omitempty,min=0"`
	MinStockLevel *int `json:"minStockLevel" validate:"omitempty,min=0"`
	MaxStockLevel *int `json:"maxStockLevel" validate:"omitempty,min=0"`
}

// InventoryResponse salida de un registro de inventario. StockStatus se
// deriva de la entidad: out-of-stock, low-stock, in-stock u overstocked.
type InventoryResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"productId"`
	StoreID         int64     `json:"storeId"`
	Quantity        int       `json:"quantity"`
	MinStockLevel   int       `json:"minStockLevel"`
	MaxStockLevel   int       `json:"maxStockLevel"`
	LastRestockDate time.Time `json:"lastRestockDate"`
	StockStatus     string    `json:"stockStatus"`
}

// InventoryWithProductResponse registro de inventario enriquecido con su
// producto; lo usan las alertas de stock bajo del dashboard.
type InventoryWithProductResponse struct {
	InventoryResponse
	Product *ProductResponse `json:"product"`
}

// ToInventoryResponse convierte la entidad a su DTO de salida.
func ToInventoryResponse(inv *entity.Inventory) *InventoryResponse {
	if inv == nil {
		return nil
	}
	return &InventoryResponse{
		ID:              inv.ID,
		ProductID:       inv.ProductID,
		StoreID:         inv.StoreID,
		Quantity:        inv.Quantity,
		MinStockLevel:   inv.MinStockLevel,
		MaxStockLevel:   inv.MaxStockLevel,
		LastRestockDate: inv.LastRestockDate,
		StockStatus:     inv.StockStatus(),
	}
}

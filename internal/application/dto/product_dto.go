package dto

import (
	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	CategoryID  int64           `json:"categoryId"`
	ImageURL    string          `json:"imageUrl"`
	Barcode     string          `json:"barcode"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit"`
	IsActive    *bool           `json:"isActive"`
}

// UpdateProductRequest entrada para actualización parcial (campos nil se conservan).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	CategoryID  *int64           `json:"categoryId"`
	ImageURL    *string          `json:"imageUrl"`
	Barcode     *string          `json:"barcode"`
	Weight      *decimal.Decimal `json:"weight"`
	Unit        *string          `json:"unit"`
	IsActive    *bool            `json:"isActive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	CategoryID  int64           `json:"categoryId"`
	ImageURL    string          `json:"imageUrl"`
	Barcode     string          `json:"barcode"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit"`
	IsActive    bool            `json:"isActive"`
}

// ToProductResponse convierte la entidad a su DTO de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Barcode:     p.Barcode,
		Weight:      p.Weight,
		Unit:        p.Unit,
		IsActive:    p.IsActive,
	}
}

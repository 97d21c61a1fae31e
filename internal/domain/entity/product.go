package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (SKU único global).
// Price es el precio de venta; CostPrice el costo de compra al proveedor.
// El stock no vive aquí: se maneja por tienda en Inventory.
type Product struct {
	ID          int64
	Name        string
	Description string
	SKU         string // código único de catálogo
	Price       decimal.Decimal
	CostPrice   decimal.Decimal
	CategoryID  int64 // 0 = sin categoría
	ImageURL    string
	Barcode     string
	Weight      decimal.Decimal
	Unit        string // lb, gallon, piece, ...
	IsActive    bool
}

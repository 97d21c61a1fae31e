package entity

import "time"

// DefaultMinStockLevel umbral mínimo que se asume cuando el registro no
// define uno propio (MinStockLevel == 0).
const DefaultMinStockLevel = 10

// Niveles de stock que devuelve StockStatus.
const (
	StockOutOfStock  = "out-of-stock"
	StockLow         = "low-stock"
	StockInStock     = "in-stock"
	StockOverstocked = "overstocked"
)

// Inventory nivel de existencias de un producto en una tienda concreta.
// La pareja (ProductID, StoreID) es única; el stock global de un producto
// es la suma de sus registros.
type Inventory struct {
	ID              int64
	ProductID       int64
	StoreID         int64
	Quantity        int
	MinStockLevel   int // 0 = usar DefaultMinStockLevel
	MaxStockLevel   int // 0 = sin techo
	LastRestockDate time.Time
}

// effectiveMin umbral mínimo efectivo del registro.
func (i Inventory) effectiveMin() int {
	if i.MinStockLevel > 0 {
		return i.MinStockLevel
	}
	return DefaultMinStockLevel
}

// IsLowStock indica si la cantidad está en o por debajo del umbral mínimo.
func (i Inventory) IsLowStock() bool {
	return i.Quantity <= i.effectiveMin()
}

// StockStatus clasifica el nivel de existencias del registro.
func (i Inventory) StockStatus() string {
	switch {
	case i.Quantity <= 0:
		return StockOutOfStock
	case i.IsLowStock():
		return StockLow
	case i.MaxStockLevel > 0 && i.Quantity > i.MaxStockLevel:
		return StockOverstocked
	default:
		return StockInStock
	}
}

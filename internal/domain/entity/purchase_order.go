package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder orden de reposición a un proveedor. Espejo estructural de
// Order, pero el estado es texto libre (pending, ordered, received...).
type PurchaseOrder struct {
	ID                   int64
	PONumber             string // único, ej. PO-8B13D0A7
	StoreID              int64  // requerido
	SupplierName         string
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Status               string
	Total                decimal.Decimal
	Notes                string
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ID              int64
	PurchaseOrderID int64
	ProductID       int64
	Quantity        int
	CostPrice       decimal.Decimal
	Total           decimal.Decimal
}

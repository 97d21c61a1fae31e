package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de venta.
type OrderStatus string

// Estados reconocidos. El estado inicial es Pending.
const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
)

// orderStatusTransitions tabla explícita de transiciones permitidas.
// Hoy todas las transiciones son legales (incluso completed → pending);
// endurecer una transición es editar esta tabla, no reescribir lógica.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusOutForDelivery},
	OrderStatusProcessing:     {OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusOutForDelivery},
	OrderStatusCompleted:      {OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusOutForDelivery},
	OrderStatusCancelled:      {OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusOutForDelivery},
}

// Valid indica si el valor pertenece a la enumeración de cinco estados.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// CanTransitionTo consulta la tabla de transiciones.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderStatusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// OrderType canal de venta de la orden.
type OrderType string

const (
	OrderTypeInStore OrderType = "in_store"
	OrderTypeOnline  OrderType = "online"
)

// Valid indica si el tipo es reconocido.
func (t OrderType) Valid() bool {
	return t == OrderTypeInStore || t == OrderTypeOnline
}

// Order es una orden de venta. Se crea una vez; después solo muta el
// estado (UpdateStatus). Los ítems viven aparte en OrderItem.
type Order struct {
	ID            int64
	OrderNumber   string // único, ej. ORD-4F2A91C3
	CustomerID    int64  // 0 = venta sin cliente registrado
	EmployeeID    int64  // 0 = sin cajero asociado
	StoreID       int64  // requerido
	OrderDate     time.Time
	Status        OrderStatus
	Type          OrderType
	Total         decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	PaymentMethod string // cash, credit, debit
	Notes         string
}

// OrderItem línea de una orden. Se crea junto con su orden y nunca se
// muta ni se borra de forma independiente.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal // precio unitario al momento de la venta
	Total     decimal.Decimal
	Discount  decimal.Decimal
}

package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus
// líneas. storeID == 0 en los listados significa sin filtro de tienda.
type OrderRepository interface {
	// Create persiste la orden y todas sus líneas como una unidad: valida
	// primero cada línea y solo después escribe. Una orden nunca queda
	// persistida sin sus ítems ni con ítems parciales. Asigna el id de la
	// orden y lo propaga al campo OrderID de cada línea.
	Create(order *entity.Order, items []*entity.OrderItem) error
	GetByID(id int64) (*entity.Order, error)
	List(storeID int64) ([]*entity.Order, error)
	ListByStatus(status entity.OrderStatus, storeID int64) ([]*entity.Order, error)
	ListByType(orderType entity.OrderType, storeID int64) ([]*entity.Order, error)
	// Recent devuelve las últimas `limit` órdenes por fecha descendente.
	Recent(limit int, storeID int64) ([]*entity.Order, error)
	// UpdateStatus reemplaza solo el campo Status; (nil, nil) si no existe.
	UpdateStatus(id int64, status entity.OrderStatus) (*entity.Order, error)
	// ItemsByOrder devuelve las líneas de la orden (vacío si no hay).
	ItemsByOrder(orderID int64) ([]*entity.OrderItem, error)
}

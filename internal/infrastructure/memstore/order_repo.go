package memstore

import (
	"fmt"
	"sort"

	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria del puerto OrderRepository.
// Las órdenes y sus líneas viven en arenas separadas con contadores
// propios; Create valida todas las líneas antes de escribir la primera,
// de modo que un fallo nunca deja una orden a medias.
type OrderRepo struct {
	orders *arena[entity.Order]
	items  *arena[entity.OrderItem]
}

// NewOrderRepository construye el repositorio de órdenes.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{
		orders: newArena[entity.Order](),
		items:  newArena[entity.OrderItem](),
	}
}

// Create persiste la orden y sus líneas como unidad. Etapas:
//  1. validar la orden y cada línea (sin escribir nada);
//  2. insertar la orden y obtener su id;
//  3. insertar cada línea con el OrderID recién asignado.
func (r *OrderRepo) Create(order *entity.Order, items []*entity.OrderItem) error {
	if order.StoreID <= 0 {
		return fmt.Errorf("crear orden: storeId requerido: %w", domain.ErrInvalidInput)
	}
	if !order.Status.Valid() {
		return fmt.Errorf("crear orden: estado %q: %w", order.Status, domain.ErrInvalidOrderStatus)
	}
	for i, item := range items {
		if item.ProductID <= 0 {
			return fmt.Errorf("crear orden: línea %d sin producto: %w", i+1, domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("crear orden: línea %d con cantidad %d: %w", i+1, item.Quantity, domain.ErrInvalidInput)
		}
	}

	order.ID = r.orders.create(func(id int64) entity.Order {
		o := *order
		o.ID = id
		return o
	})
	for _, item := range items {
		item.OrderID = order.ID
		item.ID = r.items.create(func(id int64) entity.OrderItem {
			it := *item
			it.ID = id
			return it
		})
	}
	return nil
}

func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	rec, ok := r.orders.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// List devuelve las órdenes; storeID == 0 lista todas.
func (r *OrderRepo) List(storeID int64) ([]*entity.Order, error) {
	return toPtrs(r.orders.list(func(o entity.Order) bool {
		return storeID == 0 || o.StoreID == storeID
	})), nil
}

func (r *OrderRepo) ListByStatus(status entity.OrderStatus, storeID int64) ([]*entity.Order, error) {
	return toPtrs(r.orders.list(func(o entity.Order) bool {
		return (storeID == 0 || o.StoreID == storeID) && o.Status == status
	})), nil
}

func (r *OrderRepo) ListByType(orderType entity.OrderType, storeID int64) ([]*entity.Order, error) {
	return toPtrs(r.orders.list(func(o entity.Order) bool {
		return (storeID == 0 || o.StoreID == storeID) && o.Type == orderType
	})), nil
}

// Recent devuelve las últimas `limit` órdenes por fecha descendente.
func (r *OrderRepo) Recent(limit int, storeID int64) ([]*entity.Order, error) {
	all, err := r.List(storeID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].OrderDate.After(all[j].OrderDate)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// UpdateStatus reemplaza solo el campo Status; (nil, nil) si no existe.
// No valida la transición: eso es responsabilidad del caso de uso.
func (r *OrderRepo) UpdateStatus(id int64, status entity.OrderStatus) (*entity.Order, error) {
	rec, ok := r.orders.get(id)
	if !ok {
		return nil, nil
	}
	rec.Status = status
	r.orders.put(id, rec)
	return &rec, nil
}

// ItemsByOrder devuelve las líneas de la orden en orden de inserción.
func (r *OrderRepo) ItemsByOrder(orderID int64) ([]*entity.OrderItem, error) {
	return toPtrs(r.items.list(func(it entity.OrderItem) bool {
		return it.OrderID == orderID
	})), nil
}

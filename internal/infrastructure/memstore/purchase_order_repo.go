package memstore

import (
	"fmt"

	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación en memoria del puerto
// PurchaseOrderRepository. Mismo patrón de escritura por etapas que
// OrderRepo: validar todo, después escribir.
type PurchaseOrderRepo struct {
	pos   *arena[entity.PurchaseOrder]
	items *arena[entity.PurchaseOrderItem]
}

// NewPurchaseOrderRepository construye el repositorio de órdenes de compra.
func NewPurchaseOrderRepository() *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		pos:   newArena[entity.PurchaseOrder](),
		items: newArena[entity.PurchaseOrderItem](),
	}
}

// Create persiste la orden de compra y sus líneas como unidad.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	if po.StoreID <= 0 {
		return fmt.Errorf("crear orden de compra: storeId requerido: %w", domain.ErrInvalidInput)
	}
	for i, item := range items {
		if item.ProductID <= 0 {
			return fmt.Errorf("crear orden de compra: línea %d sin producto: %w", i+1, domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("crear orden de compra: línea %d con cantidad %d: %w", i+1, item.Quantity, domain.ErrInvalidInput)
		}
	}

	po.ID = r.pos.create(func(id int64) entity.PurchaseOrder {
		p := *po
		p.ID = id
		return p
	})
	for _, item := range items {
		item.PurchaseOrderID = po.ID
		item.ID = r.items.create(func(id int64) entity.PurchaseOrderItem {
			it := *item
			it.ID = id
			return it
		})
	}
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	rec, ok := r.pos.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *PurchaseOrderRepo) List(storeID int64) ([]*entity.PurchaseOrder, error) {
	return toPtrs(r.pos.list(func(p entity.PurchaseOrder) bool {
		return storeID == 0 || p.StoreID == storeID
	})), nil
}

// UpdateStatus reemplaza solo el campo Status (texto libre, sin tabla).
func (r *PurchaseOrderRepo) UpdateStatus(id int64, status string) (*entity.PurchaseOrder, error) {
	rec, ok := r.pos.get(id)
	if !ok {
		return nil, nil
	}
	rec.Status = status
	r.pos.put(id, rec)
	return &rec, nil
}

func (r *PurchaseOrderRepo) ItemsByPurchaseOrder(poID int64) ([]*entity.PurchaseOrderItem, error) {
	return toPtrs(r.items.list(func(it entity.PurchaseOrderItem) bool {
		return it.PurchaseOrderID == poID
	})), nil
}

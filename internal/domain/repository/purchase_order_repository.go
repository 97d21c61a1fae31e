package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para
// PurchaseOrder y sus líneas. Mismo contrato de atomicidad que
// OrderRepository.Create.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	List(storeID int64) ([]*entity.PurchaseOrder, error)
	// UpdateStatus reemplaza solo el campo Status (texto libre).
	UpdateStatus(id int64, status string) (*entity.PurchaseOrder, error)
	ItemsByPurchaseOrder(poID int64) ([]*entity.PurchaseOrderItem, error)
}

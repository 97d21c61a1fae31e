package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory.
// En los listados, storeID == 0 significa sin filtro de tienda.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id int64) (*entity.Inventory, error)
	List(storeID int64) ([]*entity.Inventory, error)
	// LowStock devuelve el subconjunto de List donde la cantidad está en o
	// por debajo del umbral mínimo del registro (o del umbral por defecto).
	LowStock(storeID int64) ([]*entity.Inventory, error)
	// ByProduct devuelve todos los registros del producto, uno por tienda.
	ByProduct(productID int64) ([]*entity.Inventory, error)
	// ByProductAndStore devuelve el único registro del par, o (nil, nil).
	ByProductAndStore(productID, storeID int64) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
}

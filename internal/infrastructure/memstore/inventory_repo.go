package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria del puerto InventoryRepository.
// No fuerza el invariante de unicidad por (ProductID, StoreID); los casos
// de uso consultan ByProductAndStore antes de crear.
type InventoryRepo struct {
	arena *arena[entity.Inventory]
}

// NewInventoryRepository construye el repositorio de inventario.
func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{arena: newArena[entity.Inventory]()}
}

func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	inv.ID = r.arena.create(func(id int64) entity.Inventory {
		rec := *inv
		rec.ID = id
		return rec
	})
	return nil
}

func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// List devuelve los registros de inventario; storeID == 0 lista todos.
func (r *InventoryRepo) List(storeID int64) ([]*entity.Inventory, error) {
	return toPtrs(r.arena.list(func(i entity.Inventory) bool {
		return storeID == 0 || i.StoreID == storeID
	})), nil
}

// LowStock filtra List por cantidad <= umbral mínimo del registro.
func (r *InventoryRepo) LowStock(storeID int64) ([]*entity.Inventory, error) {
	return toPtrs(r.arena.list(func(i entity.Inventory) bool {
		return (storeID == 0 || i.StoreID == storeID) && i.IsLowStock()
	})), nil
}

// ByProduct devuelve todos los registros del producto (uno por tienda).
func (r *InventoryRepo) ByProduct(productID int64) ([]*entity.Inventory, error) {
	return toPtrs(r.arena.list(func(i entity.Inventory) bool {
		return i.ProductID == productID
	})), nil
}

// ByProductAndStore devuelve el registro del par exacto, o (nil, nil).
func (r *InventoryRepo) ByProductAndStore(productID, storeID int64) (*entity.Inventory, error) {
	rec, ok := r.arena.find(func(i entity.Inventory) bool {
		return i.ProductID == productID && i.StoreID == storeID
	})
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	r.arena.put(inv.ID, *inv)
	return nil
}

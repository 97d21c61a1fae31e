package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	arena *arena[entity.Product]
}

// NewProductRepository construye el repositorio de productos.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{arena: newArena[entity.Product]()}
}

// Create asigna el siguiente id y persiste el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	product.ID = r.arena.create(func(id int64) entity.Product {
		p := *product
		p.ID = id
		return p
	})
	return nil
}

// GetByID obtiene un producto por id; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// GetBySKU busca un producto por SKU exacto.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	rec, ok := r.arena.find(func(p entity.Product) bool { return p.SKU == sku })
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// List devuelve todos los productos en orden de creación.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return toPtrs(r.arena.list(nil)), nil
}

// Update reemplaza el producto completo; silencioso si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.arena.put(product.ID, *product)
	return nil
}

// Delete quita el producto. No hay verificación referencial: inventario y
// líneas de orden que lo apunten quedan huérfanos.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	return r.arena.delete(id), nil
}

// toPtrs convierte un slice de valores en slice de punteros a copias.
func toPtrs[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}

package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el id no existe; Delete devuelve
// false en el mismo caso. Create asigna el siguiente id y lo escribe en
// la entidad recibida.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) (bool, error)
}

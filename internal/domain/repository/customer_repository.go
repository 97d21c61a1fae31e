package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	// GetByPhone busca por teléfono exacto (escaneo lineal en el POS).
	GetByPhone(phone string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) (bool, error)
}

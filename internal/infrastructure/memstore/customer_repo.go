package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria del puerto CustomerRepository.
type CustomerRepo struct {
	arena *arena[entity.Customer]
}

// NewCustomerRepository construye el repositorio de clientes.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{arena: newArena[entity.Customer]()}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	customer.ID = r.arena.create(func(id int64) entity.Customer {
		c := *customer
		c.ID = id
		return c
	})
	return nil
}

func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// GetByPhone escaneo lineal por teléfono exacto; (nil, nil) si no hay.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	if phone == "" {
		return nil, nil
	}
	rec, ok := r.arena.find(func(c entity.Customer) bool { return c.Phone == phone })
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return toPtrs(r.arena.list(nil)), nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.arena.put(customer.ID, *customer)
	return nil
}

func (r *CustomerRepo) Delete(id int64) (bool, error) {
	return r.arena.delete(id), nil
}

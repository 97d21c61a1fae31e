package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria del puerto EmployeeRepository.
type EmployeeRepo struct {
	arena *arena[entity.Employee]
}

// NewEmployeeRepository construye el repositorio de empleados.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{arena: newArena[entity.Employee]()}
}

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	employee.ID = r.arena.create(func(id int64) entity.Employee {
		e := *employee
		e.ID = id
		return e
	})
	return nil
}

func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *EmployeeRepo) List(storeID int64) ([]*entity.Employee, error) {
	return toPtrs(r.arena.list(func(e entity.Employee) bool {
		return storeID == 0 || e.StoreID == storeID
	})), nil
}

func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	r.arena.put(employee.ID, *employee)
	return nil
}

func (r *EmployeeRepo) Delete(id int64) (bool, error) {
	return r.arena.delete(id), nil
}

package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// storeID == 0 en List significa sin filtro de tienda.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List(storeID int64) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id int64) (bool, error)
}

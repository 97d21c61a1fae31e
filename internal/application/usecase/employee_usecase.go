package usecase

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un empleado; si no trae fecha de contratación se usa hoy.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hireDate := in.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now()
	}
	employee := &entity.Employee{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		StoreID:   in.StoreID,
		HireDate:  hireDate,
		IsActive:  true,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil || employee == nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(employee), nil
}

// List empleados de una tienda; storeID == 0 lista toda la plantilla.
func (uc *EmployeeUseCase) List(storeID int64) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *dto.ToEmployeeResponse(e))
	}
	return items, nil
}

func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil || employee == nil {
		return nil, err
	}
	if in.FirstName != nil {
		employee.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		employee.LastName = *in.LastName
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.StoreID != nil {
		employee.StoreID = *in.StoreID
	}
	if in.IsActive != nil {
		employee.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

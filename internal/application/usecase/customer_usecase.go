package usecase

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// GetByPhone búsqueda exacta por teléfono; (nil, nil) si no hay cliente.
func (uc *CustomerUseCase) GetByPhone(phone string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByPhone(phone)
	if err != nil || customer == nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCustomerResponse(c))
	}
	return items, nil
}

func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, err
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.State != nil {
		customer.State = *in.State
	}
	if in.ZipCode != nil {
		customer.ZipCode = *in.ZipCode
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

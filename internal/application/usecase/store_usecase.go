package usecase

import (
	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create registra una tienda nueva; nace activa.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &entity.Store{
		Name:     in.Name,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		ZipCode:  in.ZipCode,
		Phone:    in.Phone,
		Email:    in.Email,
		IsActive: true,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(store), nil
}

func (uc *StoreUseCase) GetByID(id int64) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil || store == nil {
		return nil, err
	}
	return dto.ToStoreResponse(store), nil
}

func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToStoreResponse(s))
	}
	return items, nil
}

func (uc *StoreUseCase) Update(id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil || store == nil {
		return nil, err
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.City != nil {
		store.City = *in.City
	}
	if in.State != nil {
		store.State = *in.State
	}
	if in.ZipCode != nil {
		store.ZipCode = *in.ZipCode
	}
	if in.Phone != nil {
		store.Phone = *in.Phone
	}
	if in.Email != nil {
		store.Email = *in.Email
	}
	if in.IsActive != nil {
		store.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return dto.ToStoreResponse(store), nil
}

func (uc *StoreUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

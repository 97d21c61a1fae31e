package usecase

import (
	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
	}
	return items, nil
}

func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

func (uc *CategoryUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

// Package usecase contiene los casos de uso CRUD de las entidades del
// catálogo y la operación de la cadena. Convención: GetByID devuelve
// (nil, nil) cuando el recurso no existe; el handler decide el 404.
package usecase

import (
	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se toca
// aquí: vive en InventoryUseCase por tienda.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El SKU debe ser único en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		Barcode:     in.Barcode,
		Weight:      in.Weight,
		Unit:        in.Unit,
		IsActive:    active,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtiene un producto por id; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items, nil
}

// Update actualización parcial: solo los campos presentes en la petición.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto; devuelve false si el id no existía.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

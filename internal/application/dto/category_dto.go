package dto

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateCategoryRequest actualización parcial de una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ToCategoryResponse convierte la entidad a su DTO de salida.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, ImageURL: c.ImageURL}
}

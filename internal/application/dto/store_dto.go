package dto

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// CreateStoreRequest entrada para registrar una tienda.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateStoreRequest actualización parcial de una tienda.
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zipCode"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

// ToStoreResponse convierte la entidad a su DTO de salida.
func ToStoreResponse(s *entity.Store) *StoreResponse {
	if s == nil {
		return nil
	}
	return &StoreResponse{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		City:     s.City,
		State:    s.State,
		ZipCode:  s.ZipCode,
		Phone:    s.Phone,
		Email:    s.Email,
		IsActive: s.IsActive,
	}
}

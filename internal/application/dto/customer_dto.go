package dto

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// CreateCustomerRequest entrada para registrar un cliente.
type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCustomerResponse convierte la entidad a su DTO de salida.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		CreatedAt: c.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	FirstName string    `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string    `json:"lastName" validate:"required,min=1,max=100"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	StoreID   int64     `json:"storeId" validate:"required,gt=0"`
	HireDate  time.Time `json:"hireDate"`
}

// UpdateEmployeeRequest actualización parcial de un empleado.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Position  *string `json:"position"`
	StoreID   *int64  `json:"storeId" validate:"omitempty,gt=0"`
	IsActive  *bool   `json:"isActive"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	StoreID   int64     `json:"storeId"`
	HireDate  time.Time `json:"hireDate"`
	IsActive  bool      `json:"isActive"`
}

// ToEmployeeResponse convierte la entidad a su DTO de salida.
func ToEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Position:  e.Position,
		StoreID:   e.StoreID,
		HireDate:  e.HireDate,
		IsActive:  e.IsActive,
	}
}

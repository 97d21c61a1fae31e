package dto

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// RegisterRequest entrada para registro (password en texto, se hashea en
// el caso de uso).
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=100"`
	Password   string `json:"password" validate:"required,min=8"`
	Email      string `json:"email" validate:"omitempty,email"`
	Role       string `json:"role" validate:"omitempty,oneof=admin manager employee"`
	EmployeeID int64  `json:"employeeId"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID int64  `json:"employeeId"`
	IsActive   bool   `json:"isActive"`
}

// LoginResponse salida con token JWT, el usuario y su empleado asociado
// (nil cuando la credencial no está ligada a un empleado).
type LoginResponse struct {
	Token    string            `json:"token"`
	User     UserResponse      `json:"user"`
	Employee *EmployeeResponse `json:"employee,omitempty"`
}

// ToUserResponse convierte la entidad a su DTO de salida.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		IsActive:   u.IsActive,
	}
}

// Package auth contiene los casos de uso de autenticación: registro de
// usuarios y login con emisión de JWT.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
	"github.com/appjingle/tienda-erp/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if in.EmployeeID > 0 {
		employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound // empleado no existe
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Role:         role,
		EmployeeID:   in.EmployeeID,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token, usuario
// y el empleado asociado a la credencial (nil si no tiene).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}
	if user.EmployeeID > 0 {
		employee, err := uc.employeeRepo.GetByID(user.EmployeeID)
		if err != nil {
			return nil, err
		}
		resp.Employee = dto.ToEmployeeResponse(employee)
	}
	return resp, nil
}

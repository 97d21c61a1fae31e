package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appjingle/tienda-erp/internal/application/auth"
	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/infrastructure/memstore"
	pkgjwt "github.com/appjingle/tienda-erp/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func buildAuth(t *testing.T) (*auth.AuthUseCase, *memstore.Repositories) {
	t.Helper()
	repos := memstore.NewRepositories()
	uc := auth.NewAuthUseCase(repos.Users, repos.Employees, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-erp-test",
	})
	return uc, repos
}

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	uc, repos := buildAuth(t)

	out, err := uc.Register(dto.RegisterRequest{Username: "sara", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role, "sin rol explícito se asigna employee")
	assert.True(t, out.IsActive)

	stored, err := repos.Users.GetByUsername("sara")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "sara", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "sara", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_EmpleadoInexistente(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "x", Password: "password123", EmployeeID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_DevuelveTokenValidoYEmpleado(t *testing.T) {
	uc, repos := buildAuth(t)

	employee := &entity.Employee{FirstName: "Sara", LastName: "Jiménez", StoreID: 1, IsActive: true}
	require.NoError(t, repos.Employees.Create(employee))
	_, err := uc.Register(dto.RegisterRequest{
		Username: "sara", Password: "password123",
		Role: entity.RoleAdmin, EmployeeID: employee.ID,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "sara", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)

	require.NotNil(t, out.Employee, "el login incluye el empleado asociado")
	assert.Equal(t, "Sara", out.Employee.FirstName)
}

func TestLogin_SinEmpleadoAsociado(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "solo", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "solo", Password: "password123"})
	require.NoError(t, err)
	assert.Nil(t, out.Employee)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "sara", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "sara", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

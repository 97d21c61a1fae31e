package entity

// Roles válidos para User. El rol se usa para autorización gruesa de
// rutas; la lógica de negocio no depende de él.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User credencial de acceso al sistema, opcionalmente ligada a un Employee.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Email        string
	Role         string // admin, manager, employee
	EmployeeID   int64  // 0 = sin empleado asociado
	IsActive     bool
}

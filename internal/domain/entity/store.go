package entity

// Store representa una tienda física de la cadena. Es la raíz de alcance
// para inventario, empleados y órdenes (filtro por storeId).
type Store struct {
	ID       int64
	Name     string
	Address  string
	City     string
	State    string
	ZipCode  string
	Phone    string
	Email    string
	IsActive bool
}

package entity

import "time"

// Employee representa a un trabajador asignado a una tienda.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string // Gerente de tienda, Cajero, Bodeguero...
	StoreID   int64  // requerido
	HireDate  time.Time
	IsActive  bool
}

package entity

import "time"

// Customer representa un cliente de la cadena. En el POS se busca por
// número de teléfono al momento del cobro.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
}

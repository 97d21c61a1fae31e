package entity

// Category agrupa productos del catálogo (ej. Lácteos, Panadería).
type Category struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
}

package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (borrados, operaciones sin cuerpo).
type MessageResponse struct {
	Message string `json:"message"`
}

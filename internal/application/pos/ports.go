package pos

import "github.com/appjingle/tienda-erp/internal/application/dto"

// ReceiptPDFGenerator puerto para generar el recibo de una venta en PDF.
// La implementación vive en infraestructura (maroto). store puede ser nil
// si la tienda ya no existe.
type ReceiptPDFGenerator interface {
	Generate(receipt *dto.ReceiptResponse, store *dto.StoreResponse) ([]byte, error)
}

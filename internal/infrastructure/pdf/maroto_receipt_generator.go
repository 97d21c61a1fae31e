// Package pdf implementa la generación del recibo de venta del POS.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda            │  N° Orden + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total línea              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  FOOTER: método de pago + leyenda                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/pos"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ pos.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa pos.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(receipt *dto.ReceiptResponse, store *dto.StoreResponse) ([]byte, error) {
	storeName := "Tienda"
	if store != nil {
		storeName = store.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt, store, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(receipt.Order.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(receipt))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda (izq) y número de orden + fecha (der).
func headerRow(receipt *dto.ReceiptResponse, store *dto.StoreResponse, storeName string) core.Row {
	fecha := receipt.Order.OrderDate.Format("02/01/2006 15:04")
	address := ""
	if store != nil {
		address = fmt.Sprintf("%s, %s", store.Address, store.City)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(address, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(receipt.Order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del recibo.
func tableLineRows(items []dto.OrderItemResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				fmt.Sprintf("Producto #%d", it.ProductID),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(receipt *dto.ReceiptResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Impuesto:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+receipt.Subtotal.StringFixed(2)),
			value("$"+receipt.Tax.StringFixed(2)),
			grandValue("$"+receipt.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// footerRow: método de pago + agradecimiento.
func footerRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Método de pago: "+receipt.Order.PaymentMethod, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
			text.New("¡Gracias por su compra!", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorPrimary, Top: 7,
			}),
		),
	)
}

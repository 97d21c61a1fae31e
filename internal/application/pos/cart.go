// Package pos implementa el punto de venta: carritos por terminal y el
// cierre de la venta (checkout) con impuesto y recibo.
package pos

import (
	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// CartLine línea del carrito. Captura nombre y precio del producto al
// momento de agregarlo; un cambio de precio posterior no altera la línea.
type CartLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal precio × cantidad de la línea.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart carrito de una terminal. No es seguro para uso concurrente: el
// POSUseCase serializa el acceso.
type Cart struct {
	lines []CartLine
}

// Add agrega el producto al carrito. Si ya existe una línea del producto
// se incrementa su cantidad en lugar de duplicar la línea.
func (c *Cart) Add(product *entity.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
	})
}

// SetQuantity fija la cantidad de la línea; con qty <= 0 la elimina.
// Devuelve false si el producto no está en el carrito.
func (c *Cart) SetQuantity(productID int64, qty int) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = qty
			}
			return true
		}
	}
	return false
}

// Remove quita la línea del producto; false si no estaba.
func (c *Cart) Remove(productID int64) bool {
	return c.SetQuantity(productID, 0)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty indica si el carrito no tiene líneas.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines copia de las líneas en orden de inserción.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal suma de los totales de línea, sin impuesto.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

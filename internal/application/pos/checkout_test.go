package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/application/pos"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/infrastructure/memstore"
)

const testTerminal = "caja-1"

func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// buildPOS arma un POS con dos productos de catálogo y un cliente con
// teléfono registrado. Tasa de impuesto: 8.25%.
func buildPOS(t *testing.T) (*pos.POSUseCase, *memstore.Repositories) {
	t.Helper()
	repos := memstore.NewRepositories()

	products := []entity.Product{
		{Name: "Manzanas", SKU: "P001", Price: money(t, "3.99"), IsActive: true},
		{Name: "Leche", SKU: "P002", Price: money(t, "2.49"), IsActive: true},
		{Name: "Descontinuado", SKU: "P003", Price: money(t, "1.00"), IsActive: false},
	}
	for i := range products {
		require.NoError(t, repos.Products.Create(&products[i]))
	}
	require.NoError(t, repos.Customers.Create(&entity.Customer{
		FirstName: "María", LastName: "García", Phone: "555-2222",
	}))
	require.NoError(t, repos.Stores.Create(&entity.Store{Name: "Centro", IsActive: true}))

	orderUC := orders.NewOrderUseCase(repos.Orders)
	uc := pos.NewPOSUseCase(repos.Products, repos.Customers, orderUC, money(t, "0.0825"))
	return uc, repos
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_IncrementaLineaExistente(t *testing.T) {
	uc, _ := buildPOS(t)

	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	cart, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1, "el mismo producto no duplica la línea")
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.True(t, cart.Subtotal.Equal(money(t, "19.95")), "subtotal = 3.99 × 5")
}

func TestAddToCart_ProductoInexistente(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddToCart_ProductoInactivo(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 3, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetQuantity_CeroEliminaLinea(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	cart, err := uc.SetQuantity(testTerminal, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCarritosPorTerminalSonIndependientes(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart("caja-1", dto.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	otra := uc.GetCart("caja-2")
	assert.Empty(t, otra.Lines, "cada terminal tiene su propio carrito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CalculaImpuestoYTotal(t *testing.T) {
	uc, repos := buildPOS(t)

	// 3.99 × 5 + 2.49 × 2 = 24.93
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 1, Quantity: 5})
	require.NoError(t, err)
	_, err = uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 2, Quantity: 2})
	require.NoError(t, err)

	receipt, err := uc.Checkout(testTerminal, dto.CheckoutRequest{StoreID: 1, PaymentMethod: "credit"})
	require.NoError(t, err)

	assert.True(t, receipt.Subtotal.Equal(money(t, "24.93")), "subtotal: %s", receipt.Subtotal)
	assert.True(t, receipt.Tax.Equal(money(t, "2.06")), "impuesto 8.25%% redondeado: %s", receipt.Tax)
	assert.True(t, receipt.Total.Equal(money(t, "26.99")), "total: %s", receipt.Total)

	// La orden quedó persistida con estado completed y tipo in_store.
	persisted, err := repos.Orders.GetByID(receipt.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, entity.OrderStatusCompleted, persisted.Status)
	assert.Equal(t, entity.OrderTypeInStore, persisted.Type)

	// El checkout vacía el carrito.
	assert.Empty(t, uc.GetCart(testTerminal).Lines)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.Checkout(testTerminal, dto.CheckoutRequest{StoreID: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_SinTienda(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.Checkout(testTerminal, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrNoStoreSelected)

	// El carrito sobrevive al intento fallido.
	assert.NotEmpty(t, uc.GetCart(testTerminal).Lines)
}

func TestCheckout_AsociaClientePorTelefono(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	receipt, err := uc.Checkout(testTerminal, dto.CheckoutRequest{StoreID: 1, CustomerPhone: "555-2222"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.Order.CustomerID)
}

func TestCheckout_TelefonoDesconocidoVendeAnonimo(t *testing.T) {
	uc, _ := buildPOS(t)
	_, err := uc.AddToCart(testTerminal, dto.AddToCartRequest{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	receipt, err := uc.Checkout(testTerminal, dto.CheckoutRequest{StoreID: 1, CustomerPhone: "000-0000"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), receipt.Order.CustomerID, "teléfono sin coincidencia no bloquea la venta")
}

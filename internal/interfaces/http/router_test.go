package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appjingle/tienda-erp/internal/application/analytics"
	"github.com/appjingle/tienda-erp/internal/application/auth"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/application/pos"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/infrastructure/memstore"
	"github.com/appjingle/tienda-erp/internal/infrastructure/pdf"
	apphttp "github.com/appjingle/tienda-erp/internal/interfaces/http"
	pkgjwt "github.com/appjingle/tienda-erp/pkg/jwt"
)

// buildAPI arma la aplicación completa contra repositorios en memoria con
// los datos de demo cargados. Devuelve la app y un token admin listo.
func buildAPI(t *testing.T) (*fiber.App, string) {
	t.Helper()

	repos := memstore.NewRepositories()
	require.NoError(t, repos.SeedDemo())

	inventoryUC := usecase.NewInventoryUseCase(repos.Inventory, repos.Products)
	orderUC := orders.NewOrderUseCase(repos.Orders)
	taxRate, err := decimal.NewFromString("0.0825")
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(repos.Products),
		CategoryUC:      usecase.NewCategoryUseCase(repos.Categories),
		StoreUC:         usecase.NewStoreUseCase(repos.Stores),
		InventoryUC:     inventoryUC,
		EmployeeUC:      usecase.NewEmployeeUseCase(repos.Employees),
		CustomerUC:      usecase.NewCustomerUseCase(repos.Customers),
		UserUC:          usecase.NewUserUseCase(repos.Users),
		OrderUC:         orderUC,
		PurchaseOrderUC: orders.NewPurchaseOrderUseCase(repos.PurchaseOrders),
		POSUC:           pos.NewPOSUseCase(repos.Products, repos.Customers, orderUC, taxRate),
		ReceiptPDF:      pdf.NewMarotoReceiptGenerator(),
		DashboardUC:     analytics.NewDashboardUseCase(repos.Orders, repos.Customers, inventoryUC),
		AuthUC: auth.NewAuthUseCase(repos.Users, repos.Employees, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})

	tok, err := pkgjwt.Generate(testJWTSecret, 1, "admin", testIssuer, 60)
	require.NoError(t, err)
	return app, "Bearer " + tok
}

func apiRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación end-to-end
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginConUsuarioDemo(t *testing.T) {
	app, _ := buildAPI(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "sara", "password": "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", user["role"])
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildAPI(t)
	resp := apiRequest(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_UsersSoloAdmin(t *testing.T) {
	app, _ := buildAPI(t)

	tok, err := pkgjwt.Generate(testJWTSecret, 3, "employee", testIssuer, 60)
	require.NoError(t, err)

	resp := apiRequest(t, app, http.MethodGet, "/api/users", "Bearer "+tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"employee no puede listar usuarios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearProductoYConsultarlo(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/products", admin, map[string]interface{}{
		"name": "Café molido", "sku": "P100", "price": "8.50", "isActive": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)

	id := int64(created["id"].(float64))
	resp = apiRequest(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", id), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	assert.Equal(t, "Café molido", got["name"])
}

func TestAPI_SKUDuplicadoRetorna409(t *testing.T) {
	app, admin := buildAPI(t)

	// P001 ya existe en los datos de demo.
	resp := apiRequest(t, app, http.MethodPost, "/api/products", admin, map[string]interface{}{
		"name": "Otro", "sku": "P001", "price": "1.00",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_ProductoInexistenteRetorna404(t *testing.T) {
	app, admin := buildAPI(t)
	resp := apiRequest(t, app, http.MethodGet, "/api/products/9999", admin, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LowStockFiltraPorTienda(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodGet, "/api/inventory/low-stock?storeId=1", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var items []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 3, "la tienda 1 tiene tres alertas de stock en la demo")
	for _, it := range items {
		assert.Equal(t, float64(1), it["storeId"])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POS end-to-end: carrito → checkout → recibo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_POSCheckoutCompleto(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/pos/cart/items", admin,
		map[string]interface{}{"productId": 1, "quantity": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/pos/cart/items", admin,
		map[string]interface{}{"productId": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/pos/checkout", admin,
		map[string]interface{}{"storeId": 1, "paymentMethod": "credit"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	receipt := decodeBody(t, resp)
	assert.Equal(t, "24.93", receipt["subtotal"])
	assert.Equal(t, "2.06", receipt["tax"])
	assert.Equal(t, "26.99", receipt["total"])

	// El carrito del terminal quedó vacío.
	resp = apiRequest(t, app, http.MethodGet, "/api/pos/cart", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decodeBody(t, resp)
	lines, _ := cart["lines"].([]interface{})
	assert.Empty(t, lines)
}

func TestAPI_POSCheckoutPDF(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/pos/cart/items", admin,
		map[string]interface{}{"productId": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/pos/checkout?format=pdf", admin,
		map[string]interface{}{"storeId": 1})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_TerminalesConCarritosSeparados(t *testing.T) {
	app, admin := buildAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/pos/cart/items",
		bytes.NewBufferString(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", admin)
	req.Header.Set("X-Terminal-ID", "caja-2")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Sin header se consulta el terminal "default", que sigue vacío.
	resp = apiRequest(t, app, http.MethodGet, "/api/pos/cart", admin, nil)
	cart := decodeBody(t, resp)
	lines, _ := cart["lines"].([]interface{})
	assert.Empty(t, lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DashboardStats(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodGet, "/api/dashboard/stats", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody(t, resp)
	assert.Equal(t, float64(5), stats["customerCount"], "clientes de la demo")
	assert.Equal(t, float64(3), stats["lowStockCount"], "alertas de la demo")
	recent, _ := stats["recentOrders"].([]interface{})
	assert.NotEmpty(t, recent)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_OrdenEstadoInvalidoRetorna400(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodPut, "/api/orders/1/status", admin,
		map[string]string{"status": "archivada"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_OrdenesPorEstado(t *testing.T) {
	app, admin := buildAPI(t)

	resp := apiRequest(t, app, http.MethodGet, "/api/orders/status/completed", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	for _, o := range list {
		assert.Equal(t, "completed", o["status"])
	}
}

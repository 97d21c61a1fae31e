package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appjingle/tienda-erp/internal/application/analytics"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/infrastructure/memstore"
)

func buildDashboard(t *testing.T) (*analytics.DashboardUseCase, *memstore.Repositories) {
	t.Helper()
	repos := memstore.NewRepositories()
	inventoryUC := usecase.NewInventoryUseCase(repos.Inventory, repos.Products)
	return analytics.NewDashboardUseCase(repos.Orders, repos.Customers, inventoryUC), repos
}

func seedOrder(t *testing.T, repos *memstore.Repositories, storeID int64, date time.Time, total string) {
	t.Helper()
	amount, err := decimal.NewFromString(total)
	require.NoError(t, err)
	order := &entity.Order{
		OrderNumber: "ORD-TEST",
		StoreID:     storeID,
		OrderDate:   date,
		Status:      entity.OrderStatusCompleted,
		Type:        entity.OrderTypeInStore,
		Total:       amount,
	}
	require.NoError(t, repos.Orders.Create(order, nil))
}

func TestGetStats_SinDatosDevuelveCeros(t *testing.T) {
	uc, _ := buildDashboard(t)

	stats, err := uc.GetStats(0)
	require.NoError(t, err)

	assert.Zero(t, stats.TodaysOrders)
	assert.True(t, stats.TodaysRevenue.IsZero())
	assert.Zero(t, stats.CustomerCount)
	assert.Zero(t, stats.LowStockCount)
	assert.Empty(t, stats.RecentOrders)
	assert.Empty(t, stats.LowStockItems)
}

func TestGetStats_SoloCuentaOrdenesDeHoy(t *testing.T) {
	uc, repos := buildDashboard(t)
	now := time.Now()

	seedOrder(t, repos, 1, now, "100.00")
	seedOrder(t, repos, 1, now.Add(-time.Minute), "50.00")
	seedOrder(t, repos, 1, now.AddDate(0, 0, -1), "999.00") // ayer, fuera del corte

	stats, err := uc.GetStats(0)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TodaysOrders)
	assert.True(t, stats.TodaysRevenue.Equal(decimal.NewFromFloat(150.0)),
		"la orden de ayer no suma: %s", stats.TodaysRevenue)
}

func TestGetStats_FiltraPorTiendaPeroClientesGlobal(t *testing.T) {
	uc, repos := buildDashboard(t)
	now := time.Now()

	seedOrder(t, repos, 1, now, "100.00")
	seedOrder(t, repos, 2, now, "40.00")
	require.NoError(t, repos.Customers.Create(&entity.Customer{FirstName: "Ana"}))
	require.NoError(t, repos.Customers.Create(&entity.Customer{FirstName: "Beto"}))

	stats, err := uc.GetStats(1)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TodaysOrders, "solo la orden de la tienda 1")
	assert.True(t, stats.TodaysRevenue.Equal(decimal.NewFromFloat(100.0)))
	assert.Equal(t, 2, stats.CustomerCount, "los clientes no se filtran por tienda")
}

func TestGetStats_AlertasIncluyenElProducto(t *testing.T) {
	uc, repos := buildDashboard(t)

	product := &entity.Product{Name: "Leche", SKU: "P002", IsActive: true}
	require.NoError(t, repos.Products.Create(product))
	require.NoError(t, repos.Inventory.Create(&entity.Inventory{
		ProductID: product.ID, StoreID: 1, Quantity: 2, MinStockLevel: 10,
	}))

	stats, err := uc.GetStats(0)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.LowStockCount)
	require.Len(t, stats.LowStockItems, 1)
	require.NotNil(t, stats.LowStockItems[0].Product)
	assert.Equal(t, "Leche", stats.LowStockItems[0].Product.Name)
	assert.Equal(t, "low-stock", stats.LowStockItems[0].StockStatus)
}

func TestGetStats_RecentLimitadoACinco(t *testing.T) {
	uc, repos := buildDashboard(t)
	now := time.Now()
	for i := 0; i < 7; i++ {
		seedOrder(t, repos, 1, now.Add(-time.Duration(i)*time.Hour), "10.00")
	}

	stats, err := uc.GetStats(0)
	require.NoError(t, err)
	assert.Len(t, stats.RecentOrders, 5, "el widget muestra como máximo 5 órdenes")
}

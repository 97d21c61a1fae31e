// Package analytics contiene el caso de uso del tablero operativo de la
// cadena: KPIs del día, órdenes recientes y alertas de stock bajo.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

const dashboardRecentOrders = 5 // órdenes en el widget de recientes

// DashboardUseCase arma el resumen del tablero. "Hoy" es el día natural
// en la zona horaria del servidor (00:00 – 23:59). El conteo de clientes
// es global: los clientes no pertenecen a una tienda.
type DashboardUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	inventoryUC  *usecase.InventoryUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	inventoryUC *usecase.InventoryUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		inventoryUC:  inventoryUC,
	}
}

// GetStats construye el DashboardStatsDTO para la tienda indicada
// (storeID == 0 agrega toda la cadena).
//
// Cuatro consultas en paralelo:
//  1. órdenes del día          → TodaysOrders + TodaysRevenue
//  2. clientes registrados     → CustomerCount
//  3. últimas 5 órdenes        → RecentOrders
//  4. stock bajo con producto  → LowStockCount + LowStockItems
func (uc *DashboardUseCase) GetStats(storeID int64) (*dto.DashboardStatsDTO, error) {
	type todayResult struct {
		count   int
		revenue decimal.Decimal
		err     error
	}
	type customersResult struct {
		count int
		err   error
	}
	type recentResult struct {
		orders []*entity.Order
		err    error
	}
	type lowStockResult struct {
		items []dto.InventoryWithProductResponse
		err   error
	}

	todayCh := make(chan todayResult, 1)
	customersCh := make(chan customersResult, 1)
	recentCh := make(chan recentResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		count, revenue, err := uc.todaysMetrics(storeID)
		todayCh <- todayResult{count, revenue, err}
	}()
	go func() {
		customers, err := uc.customerRepo.List()
		customersCh <- customersResult{len(customers), err}
	}()
	go func() {
		recent, err := uc.orderRepo.Recent(dashboardRecentOrders, storeID)
		recentCh <- recentResult{recent, err}
	}()
	go func() {
		items, err := uc.inventoryUC.LowStockWithProducts(storeID)
		lowStockCh <- lowStockResult{items, err}
	}()

	today := <-todayCh
	customers := <-customersCh
	recent := <-recentCh
	lowStock := <-lowStockCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes de hoy: %w", today.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes recientes: %w", recent.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	stats := &dto.DashboardStatsDTO{
		TodaysOrders:  today.count,
		TodaysRevenue: today.revenue.Round(2),
		CustomerCount: customers.count,
		LowStockCount: len(lowStock.items),
		RecentOrders:  make([]dto.OrderResponse, 0, len(recent.orders)),
		LowStockItems: lowStock.items,
	}
	for _, o := range recent.orders {
		stats.RecentOrders = append(stats.RecentOrders, *dto.ToOrderResponse(o))
	}
	return stats, nil
}

// todaysMetrics cuenta y suma las órdenes con fecha dentro del día en
// curso. Las órdenes canceladas también cuentan: el tablero refleja
// actividad, no ingresos netos.
func (uc *DashboardUseCase) todaysMetrics(storeID int64) (int, decimal.Decimal, error) {
	all, err := uc.orderRepo.List(storeID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	count := 0
	revenue := decimal.Zero
	for _, o := range all {
		if o.OrderDate.Before(dayStart) || !o.OrderDate.Before(dayEnd) {
			continue
		}
		count++
		revenue = revenue.Add(o.Total)
	}
	return count, revenue, nil
}

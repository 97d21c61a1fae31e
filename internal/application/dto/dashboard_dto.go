package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// KPIs del día en curso (00:00 – 23:59 hora del servidor) más los widgets
// de órdenes recientes y alertas de stock bajo.
type DashboardStatsDTO struct {
	TodaysOrders  int             `json:"todaysOrders"`  // órdenes de hoy
	TodaysRevenue decimal.Decimal `json:"todaysRevenue"` // suma de totales de hoy
	CustomerCount int             `json:"customerCount"` // clientes registrados (global)
	LowStockCount int             `json:"lowStockCount"` // registros en o bajo el umbral

	RecentOrders  []OrderResponse                `json:"recentOrders"`
	LowStockItems []InventoryWithProductResponse `json:"lowStockItems"`
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/analytics"
	"github.com/appjingle/tienda-erp/internal/application/auth"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/application/pos"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	CategoryUC      *usecase.CategoryUseCase
	StoreUC         *usecase.StoreUseCase
	InventoryUC     *usecase.InventoryUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	CustomerUC      *usecase.CustomerUseCase
	UserUC          *usecase.UserUseCase
	OrderUC         *orders.OrderUseCase
	PurchaseOrderUC *orders.PurchaseOrderUseCase
	POSUC           *pos.POSUseCase
	ReceiptPDF      pos.ReceiptPDFGenerator
	DashboardUC     *analytics.DashboardUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Tiendas
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/product/:productId", inventoryHandler.ByProduct)
	invGroup.Put("/:id", inventoryHandler.Update)

	// Empleados
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Órdenes de venta
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/recent", orderHandler.Recent)
	ordersGroup.Get("/status/:status", orderHandler.ListByStatus)
	ordersGroup.Get("/type/:type", orderHandler.ListByType)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)

	// Órdenes de compra (solo admin y manager)
	pos2 := protected.Group("/purchase-orders", RequireRole(entity.RoleAdmin, entity.RoleManager))
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	pos2.Post("/", purchaseOrderHandler.Create)
	pos2.Get("/", purchaseOrderHandler.List)
	pos2.Get("/:id", purchaseOrderHandler.GetByID)
	pos2.Put("/:id/status", purchaseOrderHandler.UpdateStatus)

	// Punto de venta
	posGroup := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.POSUC, deps.StoreUC, deps.ReceiptPDF)
	posGroup.Get("/cart", posHandler.GetCart)
	posGroup.Post("/cart/items", posHandler.AddToCart)
	posGroup.Put("/cart/items/:productId", posHandler.SetQuantity)
	posGroup.Delete("/cart/items/:productId", posHandler.RemoveFromCart)
	posGroup.Delete("/cart", posHandler.ClearCart)
	posGroup.Post("/checkout", posHandler.Checkout)

	// Tablero
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}

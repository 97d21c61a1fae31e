package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/appjingle/tienda-erp/internal/application/analytics"
	"github.com/appjingle/tienda-erp/internal/application/auth"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/application/pos"
	"github.com/appjingle/tienda-erp/internal/application/usecase"
	"github.com/appjingle/tienda-erp/internal/infrastructure/memstore"
	infrapdf "github.com/appjingle/tienda-erp/internal/infrastructure/pdf"
	httpRouter "github.com/appjingle/tienda-erp/internal/interfaces/http"
	"github.com/appjingle/tienda-erp/pkg/config"
	"github.com/appjingle/tienda-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	repos := memstore.NewRepositories()
	if cfg.App.SeedDemo {
		if err := repos.SeedDemo(); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	productUC := usecase.NewProductUseCase(repos.Products)
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	storeUC := usecase.NewStoreUseCase(repos.Stores)
	inventoryUC := usecase.NewInventoryUseCase(repos.Inventory, repos.Products)
	employeeUC := usecase.NewEmployeeUseCase(repos.Employees)
	customerUC := usecase.NewCustomerUseCase(repos.Customers)
	userUC := usecase.NewUserUseCase(repos.Users)
	orderUC := orders.NewOrderUseCase(repos.Orders)
	purchaseOrderUC := orders.NewPurchaseOrderUseCase(repos.PurchaseOrders)
	posUC := pos.NewPOSUseCase(repos.Products, repos.Customers, orderUC, cfg.POS.TaxRate)
	dashboardUC := appanalytics.NewDashboardUseCase(repos.Orders, repos.Customers, inventoryUC)
	receiptPDF := infrapdf.NewMarotoReceiptGenerator()
	authUC := auth.NewAuthUseCase(repos.Users, repos.Employees, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		CategoryUC:      categoryUC,
		StoreUC:         storeUC,
		InventoryUC:     inventoryUC,
		EmployeeUC:      employeeUC,
		CustomerUC:      customerUC,
		UserUC:          userUC,
		OrderUC:         orderUC,
		PurchaseOrderUC: purchaseOrderUC,
		POSUC:           posUC,
		ReceiptPDF:      receiptPDF,
		DashboardUC:     dashboardUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

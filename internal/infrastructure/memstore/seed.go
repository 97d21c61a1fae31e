package memstore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// Repositories agrupa todos los repositorios en memoria para construirlos
// y sembrarlos de una vez.
type Repositories struct {
	Categories     *CategoryRepo
	Products       *ProductRepo
	Stores         *StoreRepo
	Inventory      *InventoryRepo
	Employees      *EmployeeRepo
	Customers      *CustomerRepo
	Orders         *OrderRepo
	PurchaseOrders *PurchaseOrderRepo
	Users          *UserRepo
}

// NewRepositories construye un juego completo de repositorios vacíos.
func NewRepositories() *Repositories {
	return &Repositories{
		Categories:     NewCategoryRepository(),
		Products:       NewProductRepository(),
		Stores:         NewStoreRepository(),
		Inventory:      NewInventoryRepository(),
		Employees:      NewEmployeeRepository(),
		Customers:      NewCustomerRepository(),
		Orders:         NewOrderRepository(),
		PurchaseOrders: NewPurchaseOrderRepository(),
		Users:          NewUserRepository(),
	}
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// SeedDemo carga datos de demostración: catálogo, tres tiendas, matriz de
// inventario, empleados con sus usuarios, clientes y órdenes de ejemplo.
// Pensado para entornos de desarrollo; se activa por configuración.
func (r *Repositories) SeedDemo() error {
	categories := []entity.Category{
		{Name: "Frutas y Verduras", Description: "Productos frescos"},
		{Name: "Lácteos y Huevos", Description: "Leche, quesos y huevos"},
		{Name: "Carnes y Pescados", Description: "Carne y pescado fresco"},
		{Name: "Panadería", Description: "Pan y horneados"},
		{Name: "Bebidas", Description: "Jugos y refrescos"},
	}
	for i := range categories {
		if err := r.Categories.Create(&categories[i]); err != nil {
			return fmt.Errorf("seed categorías: %w", err)
		}
	}

	stores := []entity.Store{
		{Name: "Centro - Calle Mayor", Address: "Calle Mayor 123", City: "Villanueva", State: "CA", ZipCode: "90001", Phone: "555-1234", Email: "centro@tiendaerp.com", IsActive: true},
		{Name: "Plaza Poniente", Address: "Av. Poniente 456", City: "Villanueva", State: "CA", ZipCode: "90002", Phone: "555-5678", Email: "poniente@tiendaerp.com", IsActive: true},
		{Name: "Portal Norte", Address: "Blvd. Norte 789", City: "Villanueva", State: "CA", ZipCode: "90003", Phone: "555-9012", Email: "norte@tiendaerp.com", IsActive: true},
	}
	for i := range stores {
		if err := r.Stores.Create(&stores[i]); err != nil {
			return fmt.Errorf("seed tiendas: %w", err)
		}
	}

	products := []entity.Product{
		{Name: "Manzanas orgánicas", SKU: "P001", Price: money("3.99"), CostPrice: money("2.10"), CategoryID: 1, Barcode: "123456789", Unit: "lb", IsActive: true},
		{Name: "Leche entera", SKU: "P002", Price: money("2.49"), CostPrice: money("1.40"), CategoryID: 2, Barcode: "234567890", Unit: "gallon", IsActive: true},
		{Name: "Pan artesanal", SKU: "P003", Price: money("4.25"), CostPrice: money("1.80"), CategoryID: 4, Barcode: "345678901", Unit: "loaf", IsActive: true},
		{Name: "Pechuga de pollo", SKU: "P004", Price: money("5.99"), CostPrice: money("3.75"), CategoryID: 3, Barcode: "456789012", Unit: "lb", IsActive: true},
		{Name: "Plátanos orgánicos", SKU: "P005", Price: money("0.99"), CostPrice: money("0.45"), CategoryID: 1, Barcode: "567890123", Unit: "lb", IsActive: true},
		{Name: "Leche de almendras", SKU: "P006", Price: money("3.49"), CostPrice: money("2.05"), CategoryID: 2, Barcode: "678901234", Unit: "half-gallon", IsActive: true},
		{Name: "Pizza congelada", SKU: "P007", Price: money("6.99"), CostPrice: money("4.20"), CategoryID: 5, Barcode: "789012345", Unit: "piece", IsActive: true},
	}
	for i := range products {
		if err := r.Products.Create(&products[i]); err != nil {
			return fmt.Errorf("seed productos: %w", err)
		}
	}

	employees := []entity.Employee{
		{FirstName: "Sara", LastName: "Jiménez", Email: "sara@tiendaerp.com", Phone: "555-1111", Position: "Gerente de tienda", StoreID: 1, IsActive: true},
		{FirstName: "Juan", LastName: "Herrera", Email: "juan@tiendaerp.com", Phone: "555-2222", Position: "Cajero", StoreID: 1, IsActive: true},
		{FirstName: "Miguel", LastName: "Dávila", Email: "miguel@tiendaerp.com", Phone: "555-3333", Position: "Bodeguero", StoreID: 1, IsActive: true},
		{FirstName: "Emilia", LastName: "Wilson", Email: "emilia@tiendaerp.com", Phone: "555-4444", Position: "Gerente de tienda", StoreID: 2, IsActive: true},
		{FirstName: "David", LastName: "Bravo", Email: "david@tiendaerp.com", Phone: "555-5555", Position: "Cajero", StoreID: 2, IsActive: true},
	}
	now := time.Now()
	for i := range employees {
		employees[i].HireDate = now.AddDate(-1, -i, 0)
		if err := r.Employees.Create(&employees[i]); err != nil {
			return fmt.Errorf("seed empleados: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed usuarios: hash: %w", err)
	}
	users := []entity.User{
		{Username: "sara", Email: "sara@tiendaerp.com", Role: entity.RoleAdmin, EmployeeID: 1, IsActive: true},
		{Username: "juan", Email: "juan@tiendaerp.com", Role: entity.RoleEmployee, EmployeeID: 2, IsActive: true},
		{Username: "miguel", Email: "miguel@tiendaerp.com", Role: entity.RoleEmployee, EmployeeID: 3, IsActive: true},
		{Username: "emilia", Email: "emilia@tiendaerp.com", Role: entity.RoleManager, EmployeeID: 4, IsActive: true},
		{Username: "david", Email: "david@tiendaerp.com", Role: entity.RoleEmployee, EmployeeID: 5, IsActive: true},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := r.Users.Create(&users[i]); err != nil {
			return fmt.Errorf("seed usuarios: %w", err)
		}
	}

	customers := []entity.Customer{
		{FirstName: "Roberto", LastName: "Juárez", Email: "roberto@example.com", Phone: "555-1111", Address: "Calle Roble 123", City: "Villanueva", State: "CA", ZipCode: "90001"},
		{FirstName: "María", LastName: "García", Email: "maria@example.com", Phone: "555-2222", Address: "Calle Pino 456", City: "Villanueva", State: "CA", ZipCode: "90001"},
		{FirstName: "Jaime", LastName: "Soto", Email: "jaime@example.com", Phone: "555-3333", Address: "Calle Arce 789", City: "Villanueva", State: "CA", ZipCode: "90002"},
		{FirstName: "Juana", LastName: "Bravo", Email: "juana@example.com", Phone: "555-4444", Address: "Calle Olmo 321", City: "Villanueva", State: "CA", ZipCode: "90002"},
		{FirstName: "José", LastName: "Martínez", Email: "jose@example.com", Phone: "555-5555", Address: "Calle Abedul 654", City: "Villanueva", State: "CA", ZipCode: "90003"},
	}
	for i := range customers {
		customers[i].CreatedAt = now
		if err := r.Customers.Create(&customers[i]); err != nil {
			return fmt.Errorf("seed clientes: %w", err)
		}
	}

	// Matriz de inventario: 7 productos × 3 tiendas. Los tres últimos
	// productos quedan bajos en la tienda 1 para ejercitar las alertas.
	for p := int64(1); p <= 7; p++ {
		for s := int64(1); s <= 3; s++ {
			qty := int(20 + p*7 + s*13)
			switch {
			case p == 5 && s == 1:
				qty = 3
			case p == 6 && s == 1:
				qty = 5
			case p == 7 && s == 1:
				qty = 8
			}
			inv := entity.Inventory{
				ProductID:       p,
				StoreID:         s,
				Quantity:        qty,
				MinStockLevel:   10,
				MaxStockLevel:   100,
				LastRestockDate: now.AddDate(0, 0, -int(p)),
			}
			if err := r.Inventory.Create(&inv); err != nil {
				return fmt.Errorf("seed inventario: %w", err)
			}
		}
	}

	type seedOrder struct {
		order entity.Order
		items []*entity.OrderItem
	}
	seedOrders := []seedOrder{
		{
			order: entity.Order{OrderNumber: "ORD-2305", CustomerID: 1, EmployeeID: 2, StoreID: 1, OrderDate: now, Status: entity.OrderStatusCompleted, Type: entity.OrderTypeInStore, Total: money("124.00"), Tax: money("10.00"), Discount: money("0.00"), PaymentMethod: "credit"},
			items: []*entity.OrderItem{
				{ProductID: 1, Quantity: 5, Price: money("3.99"), Total: money("19.95"), Discount: money("0.00")},
				{ProductID: 2, Quantity: 2, Price: money("2.49"), Total: money("4.98"), Discount: money("0.00")},
				{ProductID: 4, Quantity: 3, Price: money("5.99"), Total: money("17.97"), Discount: money("0.00")},
			},
		},
		{
			order: entity.Order{OrderNumber: "ORD-2304", CustomerID: 2, EmployeeID: 2, StoreID: 1, OrderDate: now.Add(-2 * time.Hour), Status: entity.OrderStatusProcessing, Type: entity.OrderTypeOnline, Total: money("67.50"), Tax: money("5.50"), Discount: money("0.00"), PaymentMethod: "credit"},
			items: []*entity.OrderItem{
				{ProductID: 3, Quantity: 2, Price: money("4.25"), Total: money("8.50"), Discount: money("0.00")},
				{ProductID: 6, Quantity: 1, Price: money("3.49"), Total: money("3.49"), Discount: money("0.00")},
			},
		},
		{
			order: entity.Order{OrderNumber: "ORD-2303", CustomerID: 3, EmployeeID: 5, StoreID: 2, OrderDate: now.Add(-26 * time.Hour), Status: entity.OrderStatusOutForDelivery, Type: entity.OrderTypeOnline, Total: money("89.95"), Tax: money("7.50"), Discount: money("0.00"), PaymentMethod: "credit"},
			items: []*entity.OrderItem{
				{ProductID: 7, Quantity: 2, Price: money("6.99"), Total: money("13.98"), Discount: money("0.00")},
				{ProductID: 1, Quantity: 3, Price: money("3.99"), Total: money("11.97"), Discount: money("0.00")},
			},
		},
		{
			order: entity.Order{OrderNumber: "ORD-2302", CustomerID: 4, EmployeeID: 5, StoreID: 2, OrderDate: now.Add(-30 * time.Hour), Status: entity.OrderStatusCancelled, Type: entity.OrderTypeOnline, Total: money("45.20"), Tax: money("3.70"), Discount: money("0.00"), PaymentMethod: "credit"},
			items: []*entity.OrderItem{
				{ProductID: 2, Quantity: 1, Price: money("2.49"), Total: money("2.49"), Discount: money("0.00")},
				{ProductID: 5, Quantity: 4, Price: money("0.99"), Total: money("3.96"), Discount: money("0.00")},
			},
		},
		{
			order: entity.Order{OrderNumber: "ORD-2301", CustomerID: 5, EmployeeID: 2, StoreID: 1, OrderDate: now.Add(-50 * time.Hour), Status: entity.OrderStatusCompleted, Type: entity.OrderTypeInStore, Total: money("112.75"), Tax: money("9.25"), Discount: money("0.00"), PaymentMethod: "cash"},
			items: []*entity.OrderItem{
				{ProductID: 4, Quantity: 2, Price: money("5.99"), Total: money("11.98"), Discount: money("0.00")},
				{ProductID: 3, Quantity: 3, Price: money("4.25"), Total: money("12.75"), Discount: money("0.00")},
			},
		},
	}
	for i := range seedOrders {
		if err := r.Orders.Create(&seedOrders[i].order, seedOrders[i].items); err != nil {
			return fmt.Errorf("seed órdenes: %w", err)
		}
	}

	return nil
}

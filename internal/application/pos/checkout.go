package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/application/orders"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// DefaultTerminal carrito que se usa cuando la petición no identifica
// una terminal.
const DefaultTerminal = "default"

// POSUseCase mantiene un carrito por terminal y cierra la venta. El mapa
// de carritos se protege con un mutex; cada operación toma el carrito de
// su terminal bajo el lock.
type POSUseCase struct {
	mu    sync.Mutex
	carts map[string]*Cart

	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderUC      *orders.OrderUseCase
	taxRate      decimal.Decimal // fracción, ej. 0.0825
}

// NewPOSUseCase construye el caso de uso. taxRate es la fracción de
// impuesto sobre el subtotal (0.0825 = 8.25%).
func NewPOSUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderUC *orders.OrderUseCase,
	taxRate decimal.Decimal,
) *POSUseCase {
	return &POSUseCase{
		carts:        make(map[string]*Cart),
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderUC:      orderUC,
		taxRate:      taxRate,
	}
}

func (uc *POSUseCase) cart(terminal string) *Cart {
	if terminal == "" {
		terminal = DefaultTerminal
	}
	c, ok := uc.carts[terminal]
	if !ok {
		c = &Cart{}
		uc.carts[terminal] = c
	}
	return c
}

// AddToCart agrega un producto al carrito de la terminal. Rechaza
// productos inexistentes o inactivos.
func (uc *POSUseCase) AddToCart(terminal string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsActive {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	cart := uc.cart(terminal)
	cart.Add(product, in.Quantity)
	return cartResponse(cart), nil
}

// SetQuantity fija la cantidad de una línea; qty <= 0 la elimina.
func (uc *POSUseCase) SetQuantity(terminal string, productID int64, qty int) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	cart := uc.cart(terminal)
	if !cart.SetQuantity(productID, qty) {
		return nil, domain.ErrNotFound
	}
	return cartResponse(cart), nil
}

// RemoveFromCart quita la línea del producto.
func (uc *POSUseCase) RemoveFromCart(terminal string, productID int64) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	cart := uc.cart(terminal)
	if !cart.Remove(productID) {
		return nil, domain.ErrNotFound
	}
	return cartResponse(cart), nil
}

// GetCart estado actual del carrito de la terminal.
func (uc *POSUseCase) GetCart(terminal string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return cartResponse(uc.cart(terminal))
}

// ClearCart vacía el carrito de la terminal.
func (uc *POSUseCase) ClearCart(terminal string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	cart := uc.cart(terminal)
	cart.Clear()
	return cartResponse(cart)
}

// Checkout cierra la venta del carrito de la terminal:
//  1. exige carrito con líneas y tienda seleccionada;
//  2. si viene teléfono y coincide con un cliente, la orden queda asociada;
//  3. impuesto = subtotal × taxRate, redondeado a 2 decimales;
//  4. crea la orden (estado completed, tipo in_store) con sus líneas;
//  5. vacía el carrito solo si la orden se creó.
func (uc *POSUseCase) Checkout(terminal string, in dto.CheckoutRequest) (*dto.ReceiptResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	cart := uc.cart(terminal)

	if cart.Empty() {
		return nil, domain.ErrEmptyCart
	}
	if in.StoreID <= 0 {
		return nil, domain.ErrNoStoreSelected
	}

	var customerID int64
	if in.CustomerPhone != "" {
		customer, err := uc.customerRepo.GetByPhone(in.CustomerPhone)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerID = customer.ID
		}
	}

	subtotal := cart.Subtotal()
	tax := subtotal.Mul(uc.taxRate).Round(2)
	total := subtotal.Add(tax)

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	req := dto.CreateOrderRequest{
		CustomerID:    customerID,
		EmployeeID:    in.EmployeeID,
		StoreID:       in.StoreID,
		Status:        string(entity.OrderStatusCompleted),
		Type:          string(entity.OrderTypeInStore),
		Total:         total,
		Tax:           tax,
		PaymentMethod: paymentMethod,
	}
	for _, line := range cart.Lines() {
		req.Items = append(req.Items, dto.OrderItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order, err := uc.orderUC.Create(req)
	if err != nil {
		return nil, err
	}
	cart.Clear()

	return &dto.ReceiptResponse{
		Order:    *order,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}

func cartResponse(cart *Cart) *dto.CartResponse {
	resp := &dto.CartResponse{
		Lines:    make([]dto.CartLineResponse, 0, len(cart.lines)),
		Subtotal: cart.Subtotal(),
	}
	for _, l := range cart.Lines() {
		resp.Lines = append(resp.Lines, dto.CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			LineTotal:   l.LineTotal(),
		})
	}
	return resp
}

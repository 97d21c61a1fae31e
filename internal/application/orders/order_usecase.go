// Package orders contiene los casos de uso del agregado orden de venta y
// su espejo de reposición (orden de compra).
package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// OrderUseCase operaciones sobre órdenes de venta. La creación delega la
// atomicidad orden+líneas en el repositorio; el cambio de estado valida
// contra la tabla de transiciones antes de escribir.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// NewOrderNumber genera un número de orden legible, ej. ORD-4F2A91C3.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create crea una orden con sus líneas. Defaults: estado pending, tipo
// in_store, fecha ahora, número generado. El total de cada línea se
// calcula como precio × cantidad − descuento si viene en cero.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderWithItemsResponse, error) {
	status := entity.OrderStatus(in.Status)
	if in.Status == "" {
		status = entity.OrderStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("crear orden: estado %q: %w", in.Status, domain.ErrInvalidOrderStatus)
	}
	orderType := entity.OrderType(in.Type)
	if in.Type == "" {
		orderType = entity.OrderTypeInStore
	}
	if !orderType.Valid() {
		return nil, fmt.Errorf("crear orden: tipo %q: %w", in.Type, domain.ErrInvalidInput)
	}
	orderNumber := in.OrderNumber
	if orderNumber == "" {
		orderNumber = NewOrderNumber()
	}

	order := &entity.Order{
		OrderNumber:   orderNumber,
		CustomerID:    in.CustomerID,
		EmployeeID:    in.EmployeeID,
		StoreID:       in.StoreID,
		OrderDate:     time.Now(),
		Status:        status,
		Type:          orderType,
		Total:         in.Total,
		Tax:           in.Tax,
		Discount:      in.Discount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		total := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Sub(line.Discount)
		items = append(items, &entity.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Total:     total,
			Discount:  line.Discount,
		})
	}
	if err := uc.repo.Create(order, items); err != nil {
		return nil, err
	}
	return buildOrderWithItems(order, items), nil
}

// GetByID obtiene la orden con sus líneas; (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderWithItemsResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	items, err := uc.repo.ItemsByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return buildOrderWithItems(order, items), nil
}

// List órdenes de una tienda; storeID == 0 lista todas.
func (uc *OrderUseCase) List(storeID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(storeID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus filtra por estado; rechaza estados desconocidos.
func (uc *OrderUseCase) ListByStatus(status string, storeID int64) ([]dto.OrderResponse, error) {
	s := entity.OrderStatus(status)
	if !s.Valid() {
		return nil, fmt.Errorf("listar por estado %q: %w", status, domain.ErrInvalidOrderStatus)
	}
	list, err := uc.repo.ListByStatus(s, storeID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByType filtra por canal de venta; rechaza tipos desconocidos.
func (uc *OrderUseCase) ListByType(orderType string, storeID int64) ([]dto.OrderResponse, error) {
	t := entity.OrderType(orderType)
	if !t.Valid() {
		return nil, fmt.Errorf("listar por tipo %q: %w", orderType, domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListByType(t, storeID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Recent últimas `limit` órdenes por fecha descendente.
func (uc *OrderUseCase) Recent(limit int, storeID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.Recent(limit, storeID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// UpdateStatus cambia el estado de una orden. Valida el valor contra la
// enumeración y la transición contra la tabla; (nil, nil) si la orden no
// existe.
func (uc *OrderUseCase) UpdateStatus(id int64, status string) (*dto.OrderResponse, error) {
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("actualizar estado a %q: %w", status, domain.ErrInvalidOrderStatus)
	}
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("transición %s → %s no permitida: %w", order.Status, next, domain.ErrInvalidOrderStatus)
	}
	updated, err := uc.repo.UpdateStatus(id, next)
	if err != nil || updated == nil {
		return nil, err
	}
	return dto.ToOrderResponse(updated), nil
}

func buildOrderWithItems(order *entity.Order, items []*entity.OrderItem) *dto.OrderWithItemsResponse {
	resp := &dto.OrderWithItemsResponse{
		OrderResponse: *dto.ToOrderResponse(order),
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ToOrderItemResponse(it))
	}
	return resp
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return items
}

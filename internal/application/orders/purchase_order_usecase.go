package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// PurchaseOrderUseCase operaciones sobre órdenes de compra a proveedores.
// El estado es texto libre: el flujo con cada proveedor lo define quien
// opera, no una enumeración.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo}
}

// NewPONumber genera un número de orden de compra, ej. PO-8B13D0A7.
func NewPONumber() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create crea una orden de compra con sus líneas como unidad. Defaults:
// estado pending, fecha ahora, número generado.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderWithItemsResponse, error) {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	poNumber := in.PONumber
	if poNumber == "" {
		poNumber = NewPONumber()
	}

	po := &entity.PurchaseOrder{
		PONumber:             poNumber,
		StoreID:              in.StoreID,
		SupplierName:         in.SupplierName,
		OrderDate:            time.Now(),
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               status,
		Total:                in.Total,
		Notes:                in.Notes,
	}
	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		items = append(items, &entity.PurchaseOrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			CostPrice: line.CostPrice,
			Total:     line.CostPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	if err := uc.repo.Create(po, items); err != nil {
		return nil, err
	}
	return buildPOWithItems(po, items), nil
}

// GetByID obtiene la orden de compra con sus líneas; (nil, nil) si no existe.
func (uc *PurchaseOrderUseCase) GetByID(id int64) (*dto.PurchaseOrderWithItemsResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil || po == nil {
		return nil, err
	}
	items, err := uc.repo.ItemsByPurchaseOrder(po.ID)
	if err != nil {
		return nil, err
	}
	return buildPOWithItems(po, items), nil
}

// List órdenes de compra de una tienda; storeID == 0 lista todas.
func (uc *PurchaseOrderUseCase) List(storeID int64) ([]dto.PurchaseOrderResponse, error) {
	list, err := uc.repo.List(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *dto.ToPurchaseOrderResponse(po))
	}
	return items, nil
}

// UpdateStatus cambia el estado (texto libre); (nil, nil) si no existe.
func (uc *PurchaseOrderUseCase) UpdateStatus(id int64, status string) (*dto.PurchaseOrderResponse, error) {
	updated, err := uc.repo.UpdateStatus(id, status)
	if err != nil || updated == nil {
		return nil, err
	}
	return dto.ToPurchaseOrderResponse(updated), nil
}

func buildPOWithItems(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *dto.PurchaseOrderWithItemsResponse {
	resp := &dto.PurchaseOrderWithItemsResponse{
		PurchaseOrderResponse: *dto.ToPurchaseOrderResponse(po),
		Items:                 make([]dto.PurchaseOrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ToPurchaseOrderItemResponse(it))
	}
	return resp
}

package usecase

import (
	"time"

	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// InventoryUseCase consultas y mutaciones de inventario por tienda.
// storeID == 0 en las consultas significa toda la cadena.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo}
}

// Create registra un nivel de inventario para la pareja producto × tienda.
// Rechaza duplicados de la pareja.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	existing, err := uc.repo.ByProductAndStore(in.ProductID, in.StoreID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	inv := &entity.Inventory{
		ProductID:       in.ProductID,
		StoreID:         in.StoreID,
		Quantity:        in.Quantity,
		MinStockLevel:   in.MinStockLevel,
		MaxStockLevel:   in.MaxStockLevel,
		LastRestockDate: time.Now(),
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// List inventario de una tienda, o de toda la cadena con storeID == 0.
func (uc *InventoryUseCase) List(storeID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List(storeID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// LowStock registros en o por debajo de su umbral mínimo.
func (uc *InventoryUseCase) LowStock(storeID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.LowStock(storeID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ByProduct existencias de un producto en todas las tiendas.
func (uc *InventoryUseCase) ByProduct(productID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ByProductAndStore el registro único de la pareja; (nil, nil) si no hay.
func (uc *InventoryUseCase) ByProductAndStore(productID, storeID int64) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.ByProductAndStore(productID, storeID)
	if err != nil || inv == nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// Update actualización parcial de un registro. Si cambia la cantidad a un
// valor mayor se registra como reposición (LastRestockDate).
func (uc *InventoryUseCase) Update(id int64, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil || inv == nil {
		return nil, err
	}
	if in.Quantity != nil {
		if *in.Quantity > inv.Quantity {
			inv.LastRestockDate = time.Now()
		}
		inv.Quantity = *in.Quantity
	}
	if in.MinStockLevel != nil {
		inv.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		inv.MaxStockLevel = *in.MaxStockLevel
	}
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return dto.ToInventoryResponse(inv), nil
}

// LowStockWithProducts alertas de stock bajo enriquecidas con el producto
// de cada registro; las consume el dashboard.
func (uc *InventoryUseCase) LowStockWithProducts(storeID int64) ([]dto.InventoryWithProductResponse, error) {
	list, err := uc.repo.LowStock(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryWithProductResponse, 0, len(list))
	for _, inv := range list {
		product, err := uc.productRepo.GetByID(inv.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.InventoryWithProductResponse{
			InventoryResponse: *dto.ToInventoryResponse(inv),
			Product:           dto.ToProductResponse(product),
		})
	}
	return items, nil
}

func toInventoryResponses(list []*entity.Inventory) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *dto.ToInventoryResponse(inv))
	}
	return items
}

package memstore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appjingle/tienda-erp/internal/domain"
	"github.com/appjingle/tienda-erp/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Arena: asignación de ids e índice
// ──────────────────────────────────────────────────────────────────────────────

func TestArena_IdsMonotonicos(t *testing.T) {
	repo := NewProductRepository()

	for i := 1; i <= 3; i++ {
		p := &entity.Product{Name: "P", SKU: "S"}
		require.NoError(t, repo.Create(p))
		assert.Equal(t, int64(i), p.ID, "los ids deben ser consecutivos desde 1")
	}

	// Borrar el último no recicla su id.
	deleted, err := repo.Delete(3)
	require.NoError(t, err)
	require.True(t, deleted)

	p := &entity.Product{Name: "P4", SKU: "S4"}
	require.NoError(t, repo.Create(p))
	assert.Equal(t, int64(4), p.ID, "un id borrado nunca se reutiliza")
}

func TestArena_GetDespuesDeCreate(t *testing.T) {
	repo := NewStoreRepository()
	s := &entity.Store{Name: "Centro", IsActive: true}
	require.NoError(t, repo.Create(s))

	got, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Centro", got.Name)

	// El registro almacenado es una copia: mutar el resultado no afecta al repo.
	got.Name = "Mutado"
	again, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centro", again.Name)
}

func TestArena_GetInexistenteDevuelveNilNil(t *testing.T) {
	repo := NewCategoryRepository()
	got, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, got, "id inexistente debe devolver (nil, nil)")
}

func TestArena_DeleteDosVeces(t *testing.T) {
	repo := NewCategoryRepository()
	cat := &entity.Category{Name: "Bebidas"}
	require.NoError(t, repo.Create(cat))

	deleted, err := repo.Delete(cat.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(cat.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "el segundo borrado debe devolver false")
}

func TestArena_ListConservaOrdenDeInsercion(t *testing.T) {
	repo := NewCustomerRepository()
	names := []string{"Ana", "Beto", "Carla"}
	for _, n := range names {
		require.NoError(t, repo.Create(&entity.Customer{FirstName: n}))
	}
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, n := range names {
		assert.Equal(t, n, list[i].FirstName)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderRepo: escritura por etapas
// ──────────────────────────────────────────────────────────────────────────────

func validOrder() *entity.Order {
	return &entity.Order{
		OrderNumber: "ORD-TEST01",
		StoreID:     1,
		Status:      entity.OrderStatusPending,
		Type:        entity.OrderTypeInStore,
		Total:       decimal.NewFromInt(10),
	}
}

func TestOrderRepo_CreatePersisteOrdenYLineas(t *testing.T) {
	repo := NewOrderRepository()
	items := []*entity.OrderItem{
		{ProductID: 1, Quantity: 2, Price: decimal.NewFromFloat(3.99)},
		{ProductID: 2, Quantity: 1, Price: decimal.NewFromFloat(2.49)},
	}
	order := validOrder()
	require.NoError(t, repo.Create(order, items))
	assert.Equal(t, int64(1), order.ID)

	got, err := repo.ItemsByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, it := range got {
		assert.Equal(t, order.ID, it.OrderID, "cada línea lleva el id de su orden")
	}
}

func TestOrderRepo_CreateLineaInvalidaNoEscribeNada(t *testing.T) {
	repo := NewOrderRepository()
	items := []*entity.OrderItem{
		{ProductID: 1, Quantity: 2, Price: decimal.NewFromFloat(3.99)},
		{ProductID: 2, Quantity: 0, Price: decimal.NewFromFloat(2.49)}, // cantidad inválida
	}
	err := repo.Create(validOrder(), items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ni la orden ni la primera línea quedaron persistidas.
	list, err := repo.List(0)
	require.NoError(t, err)
	assert.Empty(t, list, "una orden con línea inválida no debe persistirse a medias")
}

func TestOrderRepo_CreateSinTiendaFalla(t *testing.T) {
	repo := NewOrderRepository()
	order := validOrder()
	order.StoreID = 0
	err := repo.Create(order, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderRepo_ListFiltraPorTienda(t *testing.T) {
	repo := NewOrderRepository()
	o1 := validOrder()
	require.NoError(t, repo.Create(o1, nil))
	o2 := validOrder()
	o2.StoreID = 2
	require.NoError(t, repo.Create(o2, nil))

	tienda1, err := repo.List(1)
	require.NoError(t, err)
	assert.Len(t, tienda1, 1)

	todas, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, todas, 2, "storeID == 0 lista todas")
}

func TestOrderRepo_UpdateStatusInexistente(t *testing.T) {
	repo := NewOrderRepository()
	got, err := repo.UpdateStatus(42, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, got, "orden inexistente devuelve (nil, nil)")
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryRepo: filtros de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_LowStock(t *testing.T) {
	repo := NewInventoryRepository()
	recs := []entity.Inventory{
		{ProductID: 1, StoreID: 1, Quantity: 3, MinStockLevel: 10},  // bajo
		{ProductID: 2, StoreID: 1, Quantity: 50, MinStockLevel: 10}, // ok
		{ProductID: 3, StoreID: 1, Quantity: 10, MinStockLevel: 10}, // en el umbral = bajo
		{ProductID: 4, StoreID: 2, Quantity: 5},                     // umbral por defecto (10)
	}
	for i := range recs {
		require.NoError(t, repo.Create(&recs[i]))
	}

	low, err := repo.LowStock(1)
	require.NoError(t, err)
	assert.Len(t, low, 2, "cantidad <= umbral cuenta como stock bajo")

	lowAll, err := repo.LowStock(0)
	require.NoError(t, err)
	assert.Len(t, lowAll, 3, "sin filtro entra también el registro con umbral por defecto")
}

func TestInventoryRepo_ByProductAndStore(t *testing.T) {
	repo := NewInventoryRepository()
	require.NoError(t, repo.Create(&entity.Inventory{ProductID: 7, StoreID: 2, Quantity: 9}))

	got, err := repo.ByProductAndStore(7, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 9, got.Quantity)

	missing, err := repo.ByProductAndStore(7, 3)
	require.NoError(t, err)
	assert.Nil(t, missing, "pareja inexistente devuelve (nil, nil)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDemo_CargaDatosCoherentes(t *testing.T) {
	repos := NewRepositories()
	require.NoError(t, repos.SeedDemo())

	products, err := repos.Products.List()
	require.NoError(t, err)
	assert.Len(t, products, 7)

	stores, err := repos.Stores.List()
	require.NoError(t, err)
	assert.Len(t, stores, 3)

	inv, err := repos.Inventory.List(0)
	require.NoError(t, err)
	assert.Len(t, inv, 21, "matriz completa de 7 productos × 3 tiendas")

	low, err := repos.Inventory.LowStock(1)
	require.NoError(t, err)
	assert.Len(t, low, 3, "la tienda 1 nace con tres alertas de stock bajo")

	orders, err := repos.Orders.List(0)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
	for _, o := range orders {
		items, err := repos.Orders.ItemsByOrder(o.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, items, "toda orden sembrada tiene líneas")
	}
}

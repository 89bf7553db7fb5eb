package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/ledger"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

func newInventoryUC(f *ledgerFixture) *ledger.InventoryUseCase {
	return ledger.NewInventoryUseCase(f.txRunner, f.movRepo, f.productRepo, ledger.NopAuditLogger{})
}

func TestRegisterAdjustment_PositivoYNegativo(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 5)

	out, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  3,
		Remarks:   "conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeAdjustment, out.Type)
	assert.Equal(t, int64(8), f.stockOf(productID))

	_, err = uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  -2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), f.stockOf(productID))

	// El stock cacheado sigue siendo la suma del log
	assert.Equal(t, f.sumMovements(productID), f.stockOf(productID)-5)
}

func TestRegisterAdjustment_NoDejaStockNegativo(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 2)

	_, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  -3,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rechazado sin efectos: ni movimiento ni cambio de stock
	assert.Empty(t, f.store.data.movements)
	assert.Equal(t, int64(2), f.stockOf(productID))
}

func TestRegisterAdjustment_CantidadCeroInvalida(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 2)

	_, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_PaginadoAscendente(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 0)

	for i := 0; i < 5; i++ {
		_, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
			ProductID: productID,
			Quantity:  int64(i + 1),
		})
		require.NoError(t, err)
	}

	page1, err := uc.History(context.Background(), productID, nil, nil, dto.PageRequest{Limit: 3, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, int64(1), page1[0].Quantity)

	page2, err := uc.History(context.Background(), productID, nil, nil, dto.PageRequest{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, int64(4), page2[0].Quantity)
	assert.Equal(t, int64(5), page2[1].Quantity)
}

func TestRebuildStock_ReparaCacheDesviada(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 0)

	_, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  10,
	})
	require.NoError(t, err)

	// Corromper la caché simulando una desviación
	p := f.store.data.products[productID]
	p.StockQty = 42
	f.store.data.products[productID] = p

	out, err := uc.RebuildStock(context.Background(), "actor", productID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.StockQty)
	assert.Equal(t, int64(10), f.stockOf(productID))
}

func TestRebuildStock_CacheConsistenteNoCambia(t *testing.T) {
	f := newLedgerFixture()
	uc := newInventoryUC(f)
	productID := f.addProduct("100", "0", 0)

	_, err := uc.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  4,
	})
	require.NoError(t, err)

	out, err := uc.RebuildStock(context.Background(), "actor", productID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.StockQty)
	assert.Equal(t, int64(4), f.stockOf(productID))
}

func TestLedger_StockSiempreIgualASumaDelLog(t *testing.T) {
	f := newLedgerFixture()
	invUC := newInventoryUC(f)
	purchaseUC := newPurchaseUC(f)
	saleUC := newSaleUC(f)
	supplierID := f.addSupplier()
	customerID := f.addCustomer()
	productID := f.addProduct("100", "0", 0)

	// Compra recibida: +20
	purchase, err := purchaseUC.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 20, UnitPrice: decimal.RequireFromString("50")}},
	})
	require.NoError(t, err)
	require.NoError(t, purchaseUC.Receive(context.Background(), "actor", purchase.ID))

	// Venta: -6
	_, err = saleUC.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 6}},
	})
	require.NoError(t, err)

	// Ajuste: -1
	_, err = invUC.RegisterAdjustment(context.Background(), "actor", dto.RegisterAdjustmentRequest{
		ProductID: productID,
		Quantity:  -1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(13), f.stockOf(productID))
	assert.Equal(t, f.sumMovements(productID), f.stockOf(productID),
		"invariante: el stock cacheado debe coincidir con la suma del log")
}

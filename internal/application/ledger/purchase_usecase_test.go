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

func newPurchaseUC(f *ledgerFixture) *ledger.PurchaseUseCase {
	return ledger.NewPurchaseUseCase(f.txRunner, f.supplierRepo, f.productRepo, f.purchaseRepo, ledger.NopAuditLogger{})
}

func TestPurchaseCreate_TotalEsSumaDeLineas(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	p1 := f.addProduct("100", "0", 0)
	p2 := f.addProduct("200", "0", 0)

	out, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: p1, Quantity: 3, UnitPrice: decimal.RequireFromString("50")},
			{ProductID: p2, Quantity: 2, UnitPrice: decimal.RequireFromString("120.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusPending, out.Status)
	// 3×50 + 2×120.50 = 391
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("391")),
		"total esperado 391, obtenido %s", out.TotalAmount)
	assert.Len(t, out.Items, 2)

	// Crear no toca inventario: sin movimientos, stock intacto
	assert.Zero(t, f.sumMovements(p1))
	assert.Zero(t, f.stockOf(p1))
}

func TestPurchaseCreate_RechazaCantidadInvalida(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	productID := f.addProduct("100", "0", 0)

	_, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 0, UnitPrice: decimal.RequireFromString("50")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("-1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseCreate_ProveedorInexistente(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	productID := f.addProduct("100", "0", 0)

	_, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: "no-existe",
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseReceive_AcreditaStockYMovimientos(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	p1 := f.addProduct("100", "0", 5)
	p2 := f.addProduct("200", "0", 0)

	out, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: p1, Quantity: 10, UnitPrice: decimal.RequireFromString("50")},
			{ProductID: p2, Quantity: 4, UnitPrice: decimal.RequireFromString("80")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Receive(context.Background(), "actor", out.ID))

	assert.Equal(t, int64(15), f.stockOf(p1))
	assert.Equal(t, int64(4), f.stockOf(p2))
	assert.Equal(t, int64(10), f.sumMovements(p1))
	assert.Equal(t, int64(4), f.sumMovements(p2))

	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusReceived, got.Status)
}

func TestPurchaseReceive_SegundoReceiveEsConflicto(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	productID := f.addProduct("100", "0", 0)

	out, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 7, UnitPrice: decimal.RequireFromString("10")}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Receive(context.Background(), "actor", out.ID))
	err = uc.Receive(context.Background(), "actor", out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// El stock se acreditó exactamente una vez
	assert.Equal(t, int64(7), f.stockOf(productID))
	assert.Equal(t, int64(7), f.sumMovements(productID))
}

func TestPurchaseReceive_NotFound(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)

	err := uc.Receive(context.Background(), "actor", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseDelete_PendingEliminaLineasYCabecera(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	productID := f.addProduct("100", "0", 0)

	out, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("10")}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "actor", out.ID))

	_, err = uc.GetByID(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.data.purchaseItems[out.ID])
}

func TestPurchaseDelete_ReceivedSeRechaza(t *testing.T) {
	f := newLedgerFixture()
	uc := newPurchaseUC(f)
	supplierID := f.addSupplier()
	productID := f.addProduct("100", "0", 0)

	out, err := uc.Create(context.Background(), "actor", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("10")}},
	})
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), "actor", out.ID))

	err = uc.Delete(context.Background(), "actor", out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La orden sigue existiendo y el stock acreditado no se revierte
	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusReceived, got.Status)
	assert.Equal(t, int64(2), f.stockOf(productID))
}

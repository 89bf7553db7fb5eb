package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/ledger"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

func newSaleUC(f *ledgerFixture) *ledger.SaleUseCase {
	return ledger.NewSaleUseCase(f.txRunner, f.customerRepo, f.productRepo, f.saleRepo, ledger.NopAuditLogger{})
}

func TestSaleCreate_CongelaPrecioYCalculaTotalConImpuesto(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "10", 50)

	out, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)

	// 2 × 100 × 1.10 = 220
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("220")),
		"total esperado 220, obtenido %s", out.TotalAmount)
	assert.NotEmpty(t, out.InvoiceNumber)

	// Línea congelada con el snapshot del catálogo
	items := f.store.data.saleItems[out.ID]
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("100")))
	assert.True(t, items[0].TaxRate.Equal(decimal.RequireFromString("10")))

	// Subir el precio del catálogo después no cambia la línea ya congelada
	p := f.store.data.products[productID]
	p.SalePrice = decimal.RequireFromString("999")
	f.store.data.products[productID] = p
	detail, err := uc.GetDetail(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, detail.Items[0].UnitPrice.Equal(decimal.RequireFromString("100")))
}

func TestSaleCreate_DescuentaStockConMovimientoSaleIssue(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "0", 10)

	_, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), f.stockOf(productID))
	assert.Equal(t, int64(-4), f.sumMovements(productID))
	require.Len(t, f.store.data.movements, 1)
	assert.Equal(t, entity.MovementTypeSaleIssue, f.store.data.movements[0].Type)
}

func TestSaleCreate_StockInsuficienteNoDejaEfectos(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	p1 := f.addProduct("100", "0", 10)
	p2 := f.addProduct("50", "0", 1)

	// La segunda línea falla: la primera no debe quedar aplicada (todo-o-nada)
	_, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items: []dto.SaleItemRequest{
			{ProductID: p1, Quantity: 3},
			{ProductID: p2, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), f.stockOf(p1))
	assert.Equal(t, int64(1), f.stockOf(p2))
	assert.Empty(t, f.store.data.movements)
	assert.Empty(t, f.store.data.sales)
}

func TestSaleCreate_ProductoInexistente(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()

	_, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: "no-existe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleCreate_NumerosDeFacturaUnicos(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("10", "0", 100)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		out, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
			CustomerID: customerID,
			Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.False(t, seen[out.InvoiceNumber], "número de factura repetido: %s", out.InvoiceNumber)
		seen[out.InvoiceNumber] = true
	}
}

func TestAddPayment_AcumulaYDisparaPaid(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "10", 10)

	sale, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err) // total 220

	res, err := uc.AddPayment(context.Background(), "actor", sale.ID, dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusQuote, res.Status)
	assert.True(t, res.PaidAmount.Equal(decimal.RequireFromString("100")))

	res, err = uc.AddPayment(context.Background(), "actor", sale.ID, dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("120"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, res.Status)
	assert.True(t, res.PaidAmount.Equal(decimal.RequireFromString("220")))
}

func TestAddPayment_SobrepagoSinClampYPaidNoRevierte(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "10", 10)

	sale, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err) // total 220

	_, err = uc.AddPayment(context.Background(), "actor", sale.ID, dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("220"),
	})
	require.NoError(t, err)

	// Un pago extra se acepta: PaidAmount 221, sin tope, sigue PAID
	res, err := uc.AddPayment(context.Background(), "actor", sale.ID, dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, res.Status)
	assert.True(t, res.PaidAmount.Equal(decimal.RequireFromString("221")))

	detail, err := uc.GetDetail(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.True(t, detail.BalanceDue.Equal(decimal.RequireFromString("-1")),
		"el saldo puede ser negativo tras sobrepago, obtenido %s", detail.BalanceDue)
}

func TestAddPayment_MontoNoPositivo(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)

	_, err := uc.AddPayment(context.Background(), "actor", "cualquiera", dto.AddPaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddPayment(context.Background(), "actor", "cualquiera", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddPayment_ConcurrentesSeSerializanSinPerderSumas(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "0", 10)

	sale, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err) // total 200

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddPayment(context.Background(), "actor", sale.ID, dto.AddPaymentRequest{
				Amount: decimal.RequireFromString("100"),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	detail, err := uc.GetDetail(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.True(t, detail.PaidAmount.Equal(decimal.RequireFromString("200")),
		"ambos pagos deben quedar reflejados, obtenido %s", detail.PaidAmount)
	assert.Equal(t, entity.SaleStatusPaid, detail.Status)
	assert.Len(t, detail.Payments, 2)
}

func TestConvert_PasaAInvoice(t *testing.T) {
	f := newLedgerFixture()
	uc := newSaleUC(f)
	customerID := f.addCustomer()
	productID := f.addProduct("100", "0", 10)

	sale, err := uc.Create(context.Background(), "actor", dto.CreateSaleRequest{
		CustomerID: customerID,
		Items:      []dto.SaleItemRequest{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	res, err := uc.Convert(context.Background(), "actor", sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusInvoice, res.Status)
}

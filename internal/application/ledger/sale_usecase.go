package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// SaleUseCase gestiona ventas: QUOTE -> INVOICE -> PAID. Crear una venta
// congela precio e impuesto del catálogo en cada línea, descuenta stock con
// movimientos SALE_ISSUE y genera un número de factura único, todo en una
// transacción. Los pagos acumulan PaidAmount de forma monótona y disparan
// PAID cuando PaidAmount >= TotalAmount.
type SaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	audit        AuditLogger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	audit AuditLogger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		audit:        audit,
	}
}

// lineTotal devuelve cantidad × precio × (1 + impuesto/100).
func lineTotal(quantity int64, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	base := decimal.NewFromInt(quantity).Mul(unitPrice)
	return base.Mul(decimal.NewFromInt(1).Add(taxRate.Div(oneHundred)))
}

// Create crea la venta en estado QUOTE con PaidAmount = 0. Por cada línea
// toma el snapshot de precio/impuesto del producto (releído dentro de la
// transacción, con la fila bloqueada), registra la salida SALE_ISSUE y
// descuenta el stock cacheado. Falla con ErrNotFound si algún producto no
// existe y con ErrInsufficientStock si el stock quedaría negativo.
func (uc *SaleUseCase) Create(ctx context.Context, actorID string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	// Validación temprana de productos (solo lectura, fuera de la tx)
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Status:     entity.SaleStatusQuote,
		PaidAmount: decimal.Zero,
		CreatedAt:  now,
	}

	err = uc.txRunner.RunSales(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		number, err := saleRepo.NextInvoiceNumber()
		if err != nil {
			return err
		}
		sale.InvoiceNumber = number

		total := decimal.Zero
		items := make([]*entity.SaleItem, 0, len(in.Items))
		for _, item := range in.Items {
			// Snapshot de precio/impuesto con la fila bloqueada: el stock y el
			// precio que se congelan son los del momento del commit.
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.StockQty < item.Quantity {
				return domain.ErrInsufficientStock
			}

			itemTotal := lineTotal(item.Quantity, product.SalePrice, product.TaxRate)
			total = total.Add(itemTotal)
			items = append(items, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.SalePrice,
				TaxRate:   product.TaxRate,
				Total:     itemTotal,
			})

			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeSaleIssue,
				Quantity:  -item.Quantity,
				Remarks:   fmt.Sprintf("Salida por venta %s", number),
				CreatedAt: now,
				CreatedBy: actorID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQty-item.Quantity); err != nil {
				return err
			}
		}

		sale.TotalAmount = total
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "CREATE_SALE", "sales", sale.ID)
	return &dto.CreateSaleResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		TotalAmount:   sale.TotalAmount,
	}, nil
}

// AddPayment registra un abono (> 0) y acumula PaidAmount con la venta
// bloqueada: pagos concurrentes se serializan y ambos quedan reflejados.
// Si PaidAmount alcanza TotalAmount la venta pasa a PAID. No hay tope:
// se aceptan pagos por encima del total (sin reembolsos en este diseño).
func (uc *SaleUseCase) AddPayment(ctx context.Context, actorID, saleID string, in dto.AddPaymentRequest) (*dto.PaymentResultResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = "CASH"
	}

	var result dto.PaymentResultResponse
	err := uc.txRunner.RunSales(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		payment := &entity.Payment{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			Amount:      in.Amount,
			PaymentType: paymentType,
			CreatedAt:   time.Now(),
		}
		if err := saleRepo.CreatePayment(payment); err != nil {
			return err
		}
		sale.PaidAmount = sale.PaidAmount.Add(in.Amount)
		if sale.PaidAmount.GreaterThanOrEqual(sale.TotalAmount) {
			sale.Status = entity.SaleStatusPaid
		}
		if err := saleRepo.UpdateTotals(sale); err != nil {
			return err
		}
		result = dto.PaymentResultResponse{
			SaleID:     sale.ID,
			PaidAmount: sale.PaidAmount,
			Status:     sale.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "ADD_PAYMENT", "sales", saleID)
	return &result, nil
}

// Convert pasa la venta a INVOICE incondicionalmente. Sin efectos financieros.
func (uc *SaleUseCase) Convert(ctx context.Context, actorID, saleID string) (*dto.PaymentResultResponse, error) {
	var result dto.PaymentResultResponse
	err := uc.txRunner.RunSales(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		sale.Status = entity.SaleStatusInvoice
		if err := saleRepo.UpdateTotals(sale); err != nil {
			return err
		}
		result = dto.PaymentResultResponse{
			SaleID:     sale.ID,
			PaidAmount: sale.PaidAmount,
			Status:     sale.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "CONVERT_SALE", "sales", saleID)
	return &result, nil
}

// GetDetail devuelve la venta completa: líneas, pagos y saldo pendiente
// (TotalAmount - PaidAmount, sin clamp).
func (uc *SaleUseCase) GetDetail(ctx context.Context, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.saleRepo.GetPayments(saleID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleDetailResponse{
		ID:            sale.ID,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerID:    sale.CustomerID,
		Status:        sale.Status,
		TotalAmount:   sale.TotalAmount,
		PaidAmount:    sale.PaidAmount,
		BalanceDue:    sale.BalanceDue(),
		CreatedAt:     sale.CreatedAt,
		Items:         make([]dto.SaleItemDetail, 0, len(items)),
		Payments:      make([]dto.PaymentDetail, 0, len(payments)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
			Total:     item.Total,
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.PaymentDetail{
			ID:          p.ID,
			Amount:      p.Amount,
			PaymentType: p.PaymentType,
			CreatedAt:   p.CreatedAt,
		})
	}
	return resp, nil
}

// List devuelve las ventas paginadas.
func (uc *SaleUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SaleSummaryResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleSummaryResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, &dto.SaleSummaryResponse{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			CustomerID:    s.CustomerID,
			Status:        s.Status,
			TotalAmount:   s.TotalAmount,
			CreatedAt:     s.CreatedAt,
		})
	}
	return out, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. PAID se alcanza por acumulación de pagos
// (PaidAmount >= TotalAmount) y nunca se revierte.
const (
	SaleStatusQuote   = "QUOTE"
	SaleStatusInvoice = "INVOICE"
	SaleStatusPaid    = "PAID"
)

// Sale es la cabecera de una venta. TotalAmount y PaidAmount son agregados
// derivados (Σ líneas y Σ pagos); solo el motor de ledger los escribe.
type Sale struct {
	ID            string
	CustomerID    string
	InvoiceNumber string // único, generado al crear
	Status        string
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	CreatedAt     time.Time
}

// BalanceDue devuelve TotalAmount - PaidAmount (sin clamp).
func (s Sale) BalanceDue() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// SaleItem es una línea de venta congelada al momento de crearla:
// UnitPrice y TaxRate son el snapshot del catálogo, Total ya incluye impuesto.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	Total     decimal.Decimal
}

// Payment es un abono inmutable aplicado a una venta.
type Payment struct {
	ID          string
	SaleID      string
	Amount      decimal.Decimal
	PaymentType string // CASH, TRANSFER...
	CreatedAt   time.Time
}

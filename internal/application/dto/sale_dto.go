package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta: el precio y el impuesto se toman del
// catálogo al crear (snapshot), por eso aquí solo viajan producto y cantidad.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items"`
}

// CreateSaleResponse resultado de crear una venta.
type CreateSaleResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// AddPaymentRequest body para POST /api/sales/:id/payments.
type AddPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type,omitempty"` // CASH por defecto
}

// PaymentResultResponse estado de la venta tras aplicar un pago.
type PaymentResultResponse struct {
	SaleID     string          `json:"sale_id"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Status     string          `json:"status"`
}

// SaleSummaryResponse elemento del listado de ventas.
type SaleSummaryResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleItemDetail línea de venta en el detalle.
type SaleItemDetail struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Total     decimal.Decimal `json:"total"`
}

// PaymentDetail pago en el detalle de venta.
type PaymentDetail struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleDetailResponse venta completa: líneas, pagos y saldo pendiente.
type SaleDetailResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerID    string           `json:"customer_id"`
	Status        string           `json:"status"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PaidAmount    decimal.Decimal  `json:"paid_amount"`
	BalanceDue    decimal.Decimal  `json:"balance_due"`
	CreatedAt     time.Time        `json:"created_at"`
	Items         []SaleItemDetail `json:"items"`
	Payments      []PaymentDetail  `json:"payments"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU               string          `json:"sku"`
	Model             string          `json:"model"`
	Variant           string          `json:"variant,omitempty"`
	Color             string          `json:"color,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	LowStockThreshold int64           `json:"low_stock_threshold,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos opcionales.
// StockQty no se actualiza por aquí: solo vía movimientos.
type UpdateProductRequest struct {
	Model             *string          `json:"model,omitempty"`
	Variant           *string          `json:"variant,omitempty"`
	Color             *string          `json:"color,omitempty"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice         *decimal.Decimal `json:"sale_price,omitempty"`
	TaxRate           *decimal.Decimal `json:"tax_rate,omitempty"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Model             string          `json:"model"`
	Variant           string          `json:"variant,omitempty"`
	Color             string          `json:"color,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	StockQty          int64           `json:"stock_qty"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

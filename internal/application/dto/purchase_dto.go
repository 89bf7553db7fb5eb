package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de una orden de compra.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierID string                `json:"supplier_id"`
	Remarks    string                `json:"remarks,omitempty"`
	Items      []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseResponse cabecera de compra en respuestas.
type PurchaseResponse struct {
	ID          string                 `json:"id"`
	SupplierID  string                 `json:"supplier_id"`
	Status      string                 `json:"status"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Remarks     string                 `json:"remarks,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	Items       []PurchaseItemResponse `json:"items,omitempty"`
}

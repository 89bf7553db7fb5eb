package dto

import "time"

// RegisterAdjustmentRequest body para POST /api/inventory/adjustments.
// Quantity va con signo: positiva suma stock, negativa resta.
type RegisterAdjustmentRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	SerialNumber string `json:"serial_number,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

// MovementResponse registro del historial de movimientos.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Remarks      string    `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RebuildStockResponse resultado de la reconciliación de stock de un producto.
type RebuildStockResponse struct {
	ProductID string `json:"product_id"`
	StockQty  int64  `json:"stock_qty"` // recalculado desde el log de movimientos
}

package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypePurchaseReceipt = "PURCHASE_RECEIPT" // entrada por recepción de compra
	MovementTypeSaleIssue       = "SALE_ISSUE"       // salida por venta
	MovementTypeAdjustment      = "ADJUSTMENT"       // ajuste manual
)

// InventoryMovement es un registro inmutable del log de stock. La cantidad
// es con signo: positiva entrada, negativa salida. La suma de movimientos
// de un producto debe coincidir siempre con Product.StockQty.
type InventoryMovement struct {
	ID           string
	ProductID    string
	Type         string
	Quantity     int64
	SerialNumber string
	Remarks      string
	CreatedAt    time.Time
	CreatedBy    string // UserID del actor
}

// ValidMovementType indica si el tipo pertenece al catálogo de movimientos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypePurchaseReceipt, MovementTypeSaleIssue, MovementTypeAdjustment:
		return true
	}
	return false
}

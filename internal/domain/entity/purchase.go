package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. RECEIVED es terminal: una orden recibida
// ya afectó inventario y no puede eliminarse ni recibirse de nuevo.
const (
	PurchaseStatusPending  = "PENDING"
	PurchaseStatusReceived = "RECEIVED"
)

// Purchase es la cabecera de una orden de compra a proveedor.
// TotalAmount es derivado: Σ(item.Quantity × item.UnitPrice).
type Purchase struct {
	ID          string
	SupplierID  string
	TotalAmount decimal.Decimal
	Status      string
	Remarks     string
	CreatedAt   time.Time
}

// PurchaseItem es una línea de la orden, inmutable una vez creada.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal
}

// LineTotal devuelve Quantity × UnitPrice.
func (i PurchaseItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (equipo o repuesto).
// StockQty es un agregado cacheado: solo el motor de ledger lo escribe,
// siempre junto a un movimiento de inventario en la misma transacción.
type Product struct {
	ID                string
	SKU               string
	Model             string
	Variant           string
	Color             string
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	TaxRate           decimal.Decimal // porcentaje (0, 5, 18...)
	StockQty          int64
	LowStockThreshold int64
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

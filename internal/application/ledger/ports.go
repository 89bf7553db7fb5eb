package ledger

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// ledger: o todos los efectos (movimiento, stock, estado, totales) se
// confirman juntos, o ninguno.
type TxRunner interface {
	// Run transacción de inventario (ajustes, reconciliación).
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error

	// RunPurchasing transacción de compras (crear, recibir, eliminar).
	RunPurchasing(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error

	// RunSales transacción de ventas (crear, pagos, convertir).
	RunSales(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// AuditLogger registra auditoría best-effort después del commit de cada
// mutación. Las implementaciones tragan sus propios errores (log + continuar):
// un fallo de auditoría nunca revierte ni reporta fallo de la operación.
type AuditLogger interface {
	Record(ctx context.Context, userID, action, tableName, recordID string)
}

// NopAuditLogger descarta los registros (útil en tests y herramientas).
type NopAuditLogger struct{}

// Record no hace nada.
func (NopAuditLogger) Record(context.Context, string, string, string, string) {}

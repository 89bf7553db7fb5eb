package repository

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia del log de
// movimientos. Solo inserta: los movimientos nunca se editan ni se borran
// (las correcciones son nuevos ADJUSTMENT).
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	// ListByProduct pagina el historial de un producto, orden ascendente por fecha.
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	// SumByProduct devuelve Σ(quantity) del producto; base de la reconciliación de stock.
	SumByProduct(productID string) (int64, error)
}

package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
// StockQty solo cambia vía UpdateStock, dentro de la misma transacción
// que registra el movimiento de inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stockQty int64) error
	Delete(id string) error
}

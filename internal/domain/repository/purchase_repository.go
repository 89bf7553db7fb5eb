package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para órdenes de compra.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(id string) (*entity.Purchase, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE): dos receive()
	// concurrentes sobre la misma orden se serializan y el segundo ve RECEIVED.
	GetForUpdate(id string) (*entity.Purchase, error)
	GetItems(purchaseID string) ([]*entity.PurchaseItem, error)
	List(limit, offset int) ([]*entity.Purchase, error)
	UpdateStatus(id, status string) error
	// DeleteItems y Delete: primero las líneas, luego la cabecera (FK).
	DeleteItems(purchaseID string) error
	Delete(id string) error
}

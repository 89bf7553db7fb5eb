package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas, líneas y pagos.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera de la venta; serializa pagos concurrentes
	// para que PaidAmount refleje todas las sumas (sin lost update).
	GetForUpdate(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
	// UpdateTotals escribe los agregados derivados (total, pagado, estado).
	UpdateTotals(sale *entity.Sale) error
	// NextInvoiceNumber consume la secuencia de numeración de facturas.
	// Único bajo concurrencia; puede dejar huecos tras un rollback.
	NextInvoiceNumber() (string, error)

	CreatePayment(payment *entity.Payment) error
	GetPayments(saleID string) ([]*entity.Payment, error)
}

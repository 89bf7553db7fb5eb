package entity

import "time"

// Supplier proveedor de compras. Entidad de referencia sin estado derivado.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
}

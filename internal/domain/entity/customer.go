package entity

import "time"

// Customer cliente de ventas y tickets de servicio.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	Status    string // Active, Inactive
	CreatedAt time.Time
}

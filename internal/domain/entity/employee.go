package entity

import "time"

// Employee empleado del negocio (referencia para RRHH básico).
type Employee struct {
	ID        string
	Name      string
	Role      string // Technician, Admin, Sales
	Phone     string
	Email     string
	IsActive  bool
	CreatedAt time.Time
}

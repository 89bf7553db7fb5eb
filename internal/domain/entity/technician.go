package entity

// Technician técnico asignable a tickets de servicio.
type Technician struct {
	ID    string
	Name  string
	Phone string
}

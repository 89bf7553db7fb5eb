package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleTecnico  = "tecnico"
)

// User usuario de la aplicación (capa de auth, fuera del motor de ledger).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

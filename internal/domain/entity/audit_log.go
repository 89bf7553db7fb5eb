package entity

import "time"

// AuditLog entrada de auditoría best-effort. Se escribe después del commit
// de la operación de negocio; su fallo nunca revierte la transacción.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string // CREATE_PURCHASE, RECEIVE_PURCHASE, ADD_PAYMENT...
	TableName string
	RecordID  string
	CreatedAt time.Time
}

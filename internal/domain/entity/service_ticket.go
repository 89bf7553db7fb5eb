package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ticket de servicio técnico.
const (
	TicketStatusReceived   = "RECEIVED"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusCompleted  = "COMPLETED"
)

// ServiceTicket orden de servicio técnico. CRUD plano: no toca el ledger.
type ServiceTicket struct {
	ID            string
	CustomerID    string
	ProductID     string
	TechnicianID  string // vacío = sin asignar
	Status        string
	EstimateParts decimal.Decimal
	EstimateLabor decimal.Decimal
	Remarks       string
	CreatedAt     time.Time
}

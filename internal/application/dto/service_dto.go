package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTicketRequest body para POST /api/service/tickets.
type CreateTicketRequest struct {
	CustomerID    string          `json:"customer_id"`
	ProductID     string          `json:"product_id"`
	TechnicianID  string          `json:"technician_id,omitempty"`
	EstimateParts decimal.Decimal `json:"estimate_parts"`
	EstimateLabor decimal.Decimal `json:"estimate_labor"`
	Remarks       string          `json:"remarks,omitempty"`
}

// UpdateTicketRequest body para PUT /api/service/tickets/:id. Campos opcionales.
type UpdateTicketRequest struct {
	TechnicianID  *string          `json:"technician_id,omitempty"`
	Status        *string          `json:"status,omitempty"`
	EstimateParts *decimal.Decimal `json:"estimate_parts,omitempty"`
	EstimateLabor *decimal.Decimal `json:"estimate_labor,omitempty"`
	Remarks       *string          `json:"remarks,omitempty"`
}

// TicketResponse ticket de servicio en respuestas.
type TicketResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	ProductID     string          `json:"product_id"`
	TechnicianID  string          `json:"technician_id,omitempty"`
	Status        string          `json:"status"`
	EstimateParts decimal.Decimal `json:"estimate_parts"`
	EstimateLabor decimal.Decimal `json:"estimate_labor"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

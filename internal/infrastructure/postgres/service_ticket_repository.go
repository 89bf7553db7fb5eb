package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ServiceTicketRepository = (*ServiceTicketRepo)(nil)

// ServiceTicketRepo implementación PostgreSQL del CRUD de tickets de servicio.
type ServiceTicketRepo struct {
	q Querier
}

func NewServiceTicketRepository(q Querier) *ServiceTicketRepo {
	return &ServiceTicketRepo{q: q}
}

const ticketColumns = `id, customer_id, product_id, technician_id, status, estimate_parts, estimate_labor, remarks, created_at`

func (r *ServiceTicketRepo) Create(ticket *entity.ServiceTicket) error {
	query := `
		INSERT INTO service_tickets (id, customer_id, product_id, technician_id, status, estimate_parts, estimate_labor, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.CustomerID, ticket.ProductID, nullIfEmpty(ticket.TechnicianID),
		ticket.Status, ticket.EstimateParts, ticket.EstimateLabor,
		nullIfEmpty(ticket.Remarks), ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create service ticket: %w", err)
	}
	return nil
}

func (r *ServiceTicketRepo) GetByID(id string) (*entity.ServiceTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM service_tickets WHERE id = $1`
	t, err := scanTicket(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service ticket: %w", err)
	}
	return t, nil
}

func (r *ServiceTicketRepo) List(limit, offset int) ([]*entity.ServiceTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM service_tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *ServiceTicketRepo) Update(ticket *entity.ServiceTicket) error {
	query := `
		UPDATE service_tickets
		SET technician_id = $2, status = $3, estimate_parts = $4, estimate_labor = $5, remarks = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ticket.ID, nullIfEmpty(ticket.TechnicianID), ticket.Status,
		ticket.EstimateParts, ticket.EstimateLabor, nullIfEmpty(ticket.Remarks),
	)
	if err != nil {
		return fmt.Errorf("update service ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update service ticket: ticket no encontrado")
	}
	return nil
}

func (r *ServiceTicketRepo) Delete(id string) error {
	query := `DELETE FROM service_tickets WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete service ticket: %w", err)
	}
	return nil
}

func scanTicket(row rowScanner) (*entity.ServiceTicket, error) {
	var t entity.ServiceTicket
	var technicianID, remarks *string
	err := row.Scan(&t.ID, &t.CustomerID, &t.ProductID, &technicianID, &t.Status,
		&t.EstimateParts, &t.EstimateLabor, &remarks, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if technicianID != nil {
		t.TechnicianID = *technicianID
	}
	if remarks != nil {
		t.Remarks = *remarks
	}
	return &t, nil
}

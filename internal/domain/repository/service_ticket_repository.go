package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ServiceTicketRepository puerto CRUD para tickets de servicio técnico.
type ServiceTicketRepository interface {
	Create(ticket *entity.ServiceTicket) error
	GetByID(id string) (*entity.ServiceTicket, error)
	List(limit, offset int) ([]*entity.ServiceTicket, error)
	Update(ticket *entity.ServiceTicket) error
	Delete(id string) error
}

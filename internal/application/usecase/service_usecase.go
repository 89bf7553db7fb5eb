package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para tickets de servicio técnico.
// No toca el ledger: presupuestos y asignación de técnico solamente.
type ServiceUseCase struct {
	ticketRepo     repository.ServiceTicketRepository
	customerRepo   repository.CustomerRepository
	productRepo    repository.ProductRepository
	technicianRepo repository.TechnicianRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(
	ticketRepo repository.ServiceTicketRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	technicianRepo repository.TechnicianRepository,
) *ServiceUseCase {
	return &ServiceUseCase{
		ticketRepo:     ticketRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		technicianRepo: technicianRepo,
	}
}

// CreateTicket crea un ticket RECEIVED. Cliente y producto deben existir;
// el técnico es opcional.
func (uc *ServiceUseCase) CreateTicket(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.CustomerID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.TechnicianID != "" {
		technician, err := uc.technicianRepo.GetByID(in.TechnicianID)
		if err != nil {
			return nil, err
		}
		if technician == nil {
			return nil, domain.ErrNotFound
		}
	}
	ticket := &entity.ServiceTicket{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		ProductID:     in.ProductID,
		TechnicianID:  in.TechnicianID,
		Status:        entity.TicketStatusReceived,
		EstimateParts: in.EstimateParts,
		EstimateLabor: in.EstimateLabor,
		Remarks:       in.Remarks,
		CreatedAt:     time.Now(),
	}
	if err := uc.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// GetTicket obtiene un ticket por ID.
func (uc *ServiceUseCase) GetTicket(id string) (*dto.TicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return toTicketResponse(ticket), nil
}

// ListTickets devuelve tickets paginados.
func (uc *ServiceUseCase) ListTickets(page dto.PageRequest) ([]*dto.TicketResponse, error) {
	page.DefaultPage()
	tickets, err := uc.ticketRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out, nil
}

// UpdateTicket actualiza estado, presupuesto o técnico asignado.
func (uc *ServiceUseCase) UpdateTicket(id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.TicketStatusReceived, entity.TicketStatusInProgress, entity.TicketStatusCompleted:
			ticket.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.TechnicianID != nil {
		if *in.TechnicianID != "" {
			technician, err := uc.technicianRepo.GetByID(*in.TechnicianID)
			if err != nil {
				return nil, err
			}
			if technician == nil {
				return nil, domain.ErrNotFound
			}
		}
		ticket.TechnicianID = *in.TechnicianID
	}
	if in.EstimateParts != nil {
		ticket.EstimateParts = *in.EstimateParts
	}
	if in.EstimateLabor != nil {
		ticket.EstimateLabor = *in.EstimateLabor
	}
	if in.Remarks != nil {
		ticket.Remarks = *in.Remarks
	}
	if err := uc.ticketRepo.Update(ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// DeleteTicket elimina un ticket.
func (uc *ServiceUseCase) DeleteTicket(id string) error {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}
	return uc.ticketRepo.Delete(id)
}

func toTicketResponse(t *entity.ServiceTicket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		ProductID:     t.ProductID,
		TechnicianID:  t.TechnicianID,
		Status:        t.Status,
		EstimateParts: t.EstimateParts,
		EstimateLabor: t.EstimateLabor,
		Remarks:       t.Remarks,
		CreatedAt:     t.CreatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// StaffUseCase casos de uso CRUD para técnicos y empleados.
type StaffUseCase struct {
	technicianRepo repository.TechnicianRepository
	employeeRepo   repository.EmployeeRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(technicianRepo repository.TechnicianRepository, employeeRepo repository.EmployeeRepository) *StaffUseCase {
	return &StaffUseCase{technicianRepo: technicianRepo, employeeRepo: employeeRepo}
}

// CreateTechnician crea un técnico.
func (uc *StaffUseCase) CreateTechnician(in dto.TechnicianRequest) (*dto.TechnicianResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	technician := &entity.Technician{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Phone: in.Phone,
	}
	if err := uc.technicianRepo.Create(technician); err != nil {
		return nil, err
	}
	return toTechnicianResponse(technician), nil
}

// ListTechnicians devuelve técnicos paginados.
func (uc *StaffUseCase) ListTechnicians(page dto.PageRequest) ([]*dto.TechnicianResponse, error) {
	page.DefaultPage()
	technicians, err := uc.technicianRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TechnicianResponse, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, toTechnicianResponse(t))
	}
	return out, nil
}

// DeleteTechnician elimina un técnico.
func (uc *StaffUseCase) DeleteTechnician(id string) error {
	technician, err := uc.technicianRepo.GetByID(id)
	if err != nil {
		return err
	}
	if technician == nil {
		return domain.ErrNotFound
	}
	return uc.technicianRepo.Delete(id)
}

// CreateEmployee crea un empleado activo.
func (uc *StaffUseCase) CreateEmployee(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      in.Role,
		Phone:     in.Phone,
		Email:     in.Email,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// ListEmployees devuelve empleados paginados.
func (uc *StaffUseCase) ListEmployees(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := uc.employeeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// UpdateEmployee actualiza los campos no vacíos del empleado.
func (uc *StaffUseCase) UpdateEmployee(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Role != "" {
		employee.Role = in.Role
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Email != "" {
		employee.Email = in.Email
	}
	if in.IsActive != nil {
		employee.IsActive = *in.IsActive
	}
	if err := uc.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func toTechnicianResponse(t *entity.Technician) *dto.TechnicianResponse {
	return &dto.TechnicianResponse{ID: t.ID, Name: t.Name, Phone: t.Phone}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Phone:     e.Phone,
		Email:     e.Email,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

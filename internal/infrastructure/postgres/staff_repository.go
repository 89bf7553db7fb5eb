package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var (
	_ repository.TechnicianRepository = (*TechnicianRepo)(nil)
	_ repository.EmployeeRepository   = (*EmployeeRepo)(nil)
)

// TechnicianRepo implementación PostgreSQL del CRUD de técnicos.
type TechnicianRepo struct {
	q Querier
}

func NewTechnicianRepository(q Querier) *TechnicianRepo {
	return &TechnicianRepo{q: q}
}

func (r *TechnicianRepo) Create(technician *entity.Technician) error {
	query := `INSERT INTO technicians (id, name, phone) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		technician.ID, technician.Name, nullIfEmpty(technician.Phone),
	)
	if err != nil {
		return fmt.Errorf("create technician: %w", err)
	}
	return nil
}

func (r *TechnicianRepo) GetByID(id string) (*entity.Technician, error) {
	query := `SELECT id, name, phone FROM technicians WHERE id = $1`
	var t entity.Technician
	var phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technician: %w", err)
	}
	if phone != nil {
		t.Phone = *phone
	}
	return &t, nil
}

func (r *TechnicianRepo) List(limit, offset int) ([]*entity.Technician, error) {
	query := `SELECT id, name, phone FROM technicians ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer rows.Close()
	var list []*entity.Technician
	for rows.Next() {
		var t entity.Technician
		var phone *string
		if err := rows.Scan(&t.ID, &t.Name, &phone); err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		if phone != nil {
			t.Phone = *phone
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TechnicianRepo) Update(technician *entity.Technician) error {
	query := `UPDATE technicians SET name = $2, phone = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		technician.ID, technician.Name, nullIfEmpty(technician.Phone),
	)
	if err != nil {
		return fmt.Errorf("update technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update technician: técnico no encontrado")
	}
	return nil
}

func (r *TechnicianRepo) Delete(id string) error {
	query := `DELETE FROM technicians WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete technician: %w", err)
	}
	return nil
}

// EmployeeRepo implementación PostgreSQL del CRUD de empleados.
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, role, phone, email, is_active, created_at`

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, role, phone, email, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Role,
		nullIfEmpty(employee.Phone), nullIfEmpty(employee.Email),
		employee.IsActive, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, role = $3, phone = $4, email = $5, is_active = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Role,
		nullIfEmpty(employee.Phone), nullIfEmpty(employee.Email), employee.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update employee: empleado no encontrado")
	}
	return nil
}

func (r *EmployeeRepo) Delete(id string) error {
	query := `DELETE FROM employees WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	var phone, email *string
	err := row.Scan(&e.ID, &e.Name, &e.Role, &phone, &email, &e.IsActive, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		e.Phone = *phone
	}
	if email != nil {
		e.Email = *email
	}
	return &e, nil
}

package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// SupplierRepository puerto CRUD para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// CustomerRepository puerto CRUD para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}

// TechnicianRepository puerto CRUD para técnicos.
type TechnicianRepository interface {
	Create(technician *entity.Technician) error
	GetByID(id string) (*entity.Technician, error)
	List(limit, offset int) ([]*entity.Technician, error)
	Update(technician *entity.Technician) error
	Delete(id string) error
}

// EmployeeRepository puerto CRUD para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}

package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios (auth).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}

// AuditLogRepository puerto de persistencia para el log de auditoría.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// AuditHandler consulta del log de auditoría (solo admin).
type AuditHandler struct {
	repo repository.AuditLogRepository
}

func NewAuditHandler(repo repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

type auditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  string    `json:"record_id"`
	CreatedAt time.Time `json:"created_at"`
}

// List devuelve las entradas más recientes del log, paginadas.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	logs, err := h.repo.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]auditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, auditLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			TableName: l.TableName,
			RecordID:  l.RecordID,
			CreatedAt: l.CreatedAt,
		})
	}
	return c.JSON(out)
}

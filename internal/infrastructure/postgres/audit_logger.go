package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/ledger"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

var _ ledger.AuditLogger = (*AuditLogger)(nil)

// AuditLogger escribe auditoría best-effort: un fallo al insertar se
// registra en el log y se descarta, nunca afecta la operación de negocio.
type AuditLogger struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

func NewAuditLogger(repo repository.AuditLogRepository, log *logger.Logger) *AuditLogger {
	return &AuditLogger{repo: repo, log: log}
}

// Record persiste la entrada de auditoría. Sin valor de retorno: el
// contrato es best-effort y los errores se tragan aquí.
func (a *AuditLogger) Record(ctx context.Context, userID, action, tableName, recordID string) {
	entry := &entity.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.repo.Create(entry); err != nil {
		a.log.Warn().
			Err(err).
			Str("action", action).
			Str("record_id", recordID).
			Msg("no se pudo escribir auditoría")
	}
}

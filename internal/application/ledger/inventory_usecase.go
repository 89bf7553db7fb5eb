package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// InventoryUseCase opera el log de movimientos fuera de compras/ventas:
// ajustes manuales, historial por producto y reconciliación del stock
// cacheado contra el log (el log es la fuente de verdad).
type InventoryUseCase struct {
	txRunner    TxRunner
	movRepo     repository.InventoryMovementRepository
	productRepo repository.ProductRepository
	audit       AuditLogger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	audit AuditLogger,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:    txRunner,
		movRepo:     movRepo,
		productRepo: productRepo,
		audit:       audit,
	}
}

// RegisterAdjustment registra un ADJUSTMENT con cantidad con signo y
// actualiza el stock cacheado en la misma transacción (fila bloqueada).
// Un ajuste que dejaría el stock negativo se rechaza.
func (uc *InventoryUseCase) RegisterAdjustment(ctx context.Context, actorID string, in dto.RegisterAdjustmentRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.InventoryMovement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Type:         entity.MovementTypeAdjustment,
		Quantity:     in.Quantity,
		SerialNumber: in.SerialNumber,
		Remarks:      in.Remarks,
		CreatedAt:    time.Now(),
		CreatedBy:    actorID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.StockQty + in.Quantity
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.UpdateStock(product.ID, newQty)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "STOCK_MOVE", "inventory_movements", mov.ID)
	return toMovementResponse(mov), nil
}

// History devuelve el historial de movimientos de un producto, ascendente
// por fecha. Paginado: una página por llamada, reanudable vía offset.
func (uc *InventoryUseCase) History(ctx context.Context, productID string, from, to *time.Time, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	movements, err := uc.movRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// RebuildStock recalcula el stock cacheado de un producto desde el log de
// movimientos, en una transacción con la fila bloqueada. Rutina de
// reparación: nunca toca el log, solo el agregado.
func (uc *InventoryUseCase) RebuildStock(ctx context.Context, actorID, productID string) (*dto.RebuildStockResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var rebuilt int64
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		sum, err := movRepo.SumByProduct(productID)
		if err != nil {
			return err
		}
		rebuilt = sum
		if sum == product.StockQty {
			return nil // cache consistente, nada que reparar
		}
		return productRepo.UpdateStock(productID, sum)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "REBUILD_STOCK", "products", productID)
	return &dto.RebuildStockResponse{ProductID: productID, StockQty: rebuilt}, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		SerialNumber: m.SerialNumber,
		Remarks:      m.Remarks,
		CreatedAt:    m.CreatedAt,
	}
}

package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// PurchaseUseCase gestiona el ciclo de una orden de compra:
// PENDING -> RECEIVED. Recibir acredita inventario (movimientos
// PURCHASE_RECEIPT + stock cacheado) y el cambio de estado en una
// sola transacción; la recepción parcial nunca es observable.
type PurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	audit        AuditLogger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	audit AuditLogger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		audit:        audit,
	}
}

// Create valida las líneas (cantidad > 0, precio >= 0), calcula el total
// como Σ(cantidad × precio) y persiste cabecera + líneas atómicamente con
// estado PENDING.
func (uc *PurchaseUseCase) Create(ctx context.Context, actorID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	total := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		total = total.Add(decimal.NewFromInt(item.Quantity).Mul(item.UnitPrice))
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		TotalAmount: total,
		Status:      entity.PurchaseStatusPending,
		Remarks:     in.Remarks,
		CreatedAt:   now,
	}
	items := make([]*entity.PurchaseItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, &entity.PurchaseItem{
			ID:         uuid.New().String(),
			PurchaseID: purchase.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	err = uc.txRunner.RunPurchasing(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, item := range items {
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, actorID, "CREATE_PURCHASE", "purchases", purchase.ID)
	return toPurchaseResponse(purchase, items), nil
}

// Receive aplica la recepción de la orden: por cada línea registra un
// movimiento PURCHASE_RECEIPT (+cantidad) e incrementa el stock cacheado
// del producto; al final marca la orden RECEIVED. Todo en una transacción,
// con la cabecera bloqueada (SELECT FOR UPDATE): de dos receive concurrentes
// solo uno acredita stock, el otro recibe ErrConflict.
func (uc *PurchaseUseCase) Receive(ctx context.Context, actorID, purchaseID string) error {
	err := uc.txRunner.RunPurchasing(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.Status == entity.PurchaseStatusReceived {
			return domain.ErrConflict // no es idempotente: el segundo receive se rechaza
		}

		items, err := purchaseRepo.GetItems(purchaseID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			mov := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				ProductID: item.ProductID,
				Type:      entity.MovementTypePurchaseReceipt,
				Quantity:  item.Quantity,
				Remarks:   fmt.Sprintf("Stock recibido por compra %s", purchaseID),
				CreatedAt: now,
				CreatedBy: actorID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQty+item.Quantity); err != nil {
				return err
			}
		}
		return purchaseRepo.UpdateStatus(purchaseID, entity.PurchaseStatusReceived)
	})
	if err != nil {
		return err
	}

	uc.audit.Record(ctx, actorID, "RECEIVE_PURCHASE", "purchases", purchaseID)
	return nil
}

// Delete elimina una orden PENDING (líneas y luego cabecera). Una orden
// RECEIVED ya afectó inventario: eliminarla rompería la consistencia
// log/stock, así que se rechaza con ErrConflict.
func (uc *PurchaseUseCase) Delete(ctx context.Context, actorID, purchaseID string) error {
	err := uc.txRunner.RunPurchasing(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.InventoryMovementRepository,
		_ repository.ProductRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.Status == entity.PurchaseStatusReceived {
			return domain.ErrConflict
		}
		if err := purchaseRepo.DeleteItems(purchaseID); err != nil {
			return err
		}
		return purchaseRepo.Delete(purchaseID)
	})
	if err != nil {
		return err
	}

	uc.audit.Record(ctx, actorID, "DELETE_PURCHASE", "purchases", purchaseID)
	return nil
}

// GetByID devuelve la orden con sus líneas.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, purchaseID string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.GetItems(purchaseID)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// List devuelve las órdenes paginadas (sin líneas).
func (uc *PurchaseUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.PurchaseResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p, nil))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Status:      p.Status,
		TotalAmount: p.TotalAmount,
		Remarks:     p.Remarks,
		CreatedAt:   p.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.LineTotal(),
		})
	}
	return resp
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/ledger"
)

// InventoryHandler maneja ajustes, historial y reconciliación de stock.
type InventoryHandler struct {
	uc *ledger.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterAdjustment registra un ajuste manual (cantidad con signo).
// POST /api/inventory/adjustments
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var in dto.RegisterAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.RegisterAdjustment(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History devuelve el historial de movimientos de un producto, ascendente.
// GET /api/inventory/products/:id/movements?from=...&to=...
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	productID := c.Params("id")
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}
	out, err := h.uc.History(c.Context(), productID, from, to, parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RebuildStock recalcula la caché de stock desde el log de movimientos.
// POST /api/inventory/products/:id/rebuild-stock
func (h *InventoryHandler) RebuildStock(c *fiber.Ctx) error {
	out, err := h.uc.RebuildStock(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

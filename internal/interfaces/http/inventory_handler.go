package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de estoque.
type InventoryHandler struct {
	uc *inventory.ApplyMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ApplyMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement aplica un movimiento de entrada o salida
// (POST /api/movements). La cantidad viaja como texto libre; la validación
// pertenece al caso de uso.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), in.ProductID, entity.Direction(in.Direction), in.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

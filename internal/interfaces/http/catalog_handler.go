// Package http expone la capa de presentación sobre Fiber. Los handlers
// son envoltorios delgados: parsean el cuerpo, delegan al caso de uso y
// mapean el resultado o el error; no contienen lógica de inventario.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mini-erp/internal/application/catalog"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de productos.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Register registra un producto nuevo (POST /api/products).
func (h *CatalogHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// List devuelve el catálogo completo (GET /api/products).
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// GetByID devuelve un producto (GET /api/products/:id).
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// Delete elimina un producto y su historial de movimientos (DELETE /api/products/:id).
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// Alerts devuelve las alertas de stock bajo actuales (GET /api/alerts).
func (h *CatalogHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.uc.Alerts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": alerts})
}

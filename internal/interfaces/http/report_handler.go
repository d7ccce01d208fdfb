package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mini-erp/internal/application/reports"
)

// ReportHandler entrega las tres series de reporte como JSON. El renderizado
// (barras, líneas, rotación de ejes) es asunto del cliente de gráficos.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockSnapshot serie (nombre, saldo) por producto (GET /api/reports/stock).
func (h *ReportHandler) StockSnapshot(c *fiber.Ctx) error {
	series, err := h.uc.StockSnapshot(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

// StockEvolution curva acumulada del stock total por minuto
// (GET /api/reports/evolution).
func (h *ReportHandler) StockEvolution(c *fiber.Ctx) error {
	series, err := h.uc.StockEvolution(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

// ABCCurve curva ABC de valor de inventario (GET /api/reports/abc).
func (h *ReportHandler) ABCCurve(c *fiber.Ctx) error {
	series, err := h.uc.ABCCurve(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

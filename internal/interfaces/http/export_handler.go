package http

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/mini-erp/internal/application/catalog"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
)

// Exporter colaborador de planilla: recibe el catálogo ya leído y lo vuelca
// como xlsx. El núcleo no sabe cómo se serializa.
type Exporter interface {
	Write(w io.Writer, products []entity.Product) error
}

// ExportHandler descarga del catálogo en planilla.
type ExportHandler struct {
	uc       *catalog.UseCase
	exporter Exporter
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *catalog.UseCase, exporter Exporter) *ExportHandler {
	return &ExportHandler{uc: uc, exporter: exporter}
}

// Download genera y descarga la planilla del catálogo (GET /api/export/xlsx).
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	products, err := h.uc.Products(c.Context())
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, products); err != nil {
		return fail(c, err)
	}

	filename := fmt.Sprintf("estoque_%s.xlsx", uuid.New().String()[:8])
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

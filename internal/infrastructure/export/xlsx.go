// Package export implementa el colaborador de planilla: vuelca el catálogo
// completo a un libro xlsx. No conoce la lógica del núcleo; recibe los
// productos ya leídos.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
)

// Orden de columnas del contrato de exportación. No cambiar.
var headers = []string{"ID", "Nombre", "Categoría", "Precio", "Cantidad"}

const sheetName = "Estoque"

// XLSXExporter escribe el catálogo como planilla xlsx.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Write vuelca los productos en w, una fila por producto bajo la fila de
// encabezados, en el orden (ID, Nombre, Categoría, Precio, Cantidad).
func (e *XLSXExporter) Write(w io.Writer, products []entity.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("eliminar hoja por defecto: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for i, p := range products {
		row := i + 2
		price, _ := p.Price.Float64()
		values := []any{p.ID, p.Name, p.Category, price, p.Quantity}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("escribir fila %d: %w", row, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("escribir planilla: %w", err)
	}
	return nil
}

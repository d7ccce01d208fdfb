// Package alert evalúa condiciones de stock bajo sobre el catálogo.
package alert

import "github.com/tu-usuario/mini-erp/internal/domain/entity"

// LowStockThreshold saldo a partir del cual (inclusive) se emite la alerta.
// Fijo en el alcance actual; se expone como constante nombrada.
const LowStockThreshold = 5

// LowStock es la alerta de stock bajo de un producto.
type LowStock struct {
	ProductID string
	Name      string
	Quantity  int64
}

// Evaluate recorre el catálogo y devuelve una alerta por cada producto con
// saldo <= LowStockThreshold. Función pura del estado del catálogo: cada
// invocación rederiva las alertas desde cero, sin deduplicación entre
// llamadas; quien llama decide cómo presentar repeticiones.
func Evaluate(products []entity.Product) []LowStock {
	var alerts []LowStock
	for _, p := range products {
		if p.Quantity <= LowStockThreshold {
			alerts = append(alerts, LowStock{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  p.Quantity,
			})
		}
	}
	return alerts
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotPoint punto del gráfico de barras de stock actual: (nombre, saldo).
type SnapshotPoint struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// EvolutionPoint punto de la curva de evolución del stock total:
// (minuto, suma acumulada de cantidades firmadas hasta ese minuto).
type EvolutionPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Cumulative int64     `json:"cumulative"`
}

// ABCPoint punto de la curva ABC: producto con su valor de inventario y la
// fracción acumulada del valor total, en orden descendente por valor.
type ABCPoint struct {
	Name            string          `json:"name"`
	Value           decimal.Decimal `json:"value"`
	CumulativeShare decimal.Decimal `json:"cumulative_share"` // fracción en [0,1]
}

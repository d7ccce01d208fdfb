package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mini-erp/internal/domain"
)

// ParseQuantity valida la cantidad digitada en texto libre y la convierte a
// entero positivo. La regla es deliberada y se preserva tal cual:
//
//  1. trim; vacío → ErrEmptyInput
//  2. la coma decimal se normaliza a punto ("2,0" → "2.0")
//  3. si no parsea como número real → ErrNotANumber
//  4. si la parte fraccionaria no es exactamente cero → ErrNotInteger
//     (se acepta "2.0", se rechaza "2.5": la entrada es texto libre)
//  5. si el entero resultante no es > 0 → ErrNonPositive
func ParseQuantity(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ErrEmptyInput
	}
	raw = strings.ReplaceAll(raw, ",", ".")

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, domain.ErrNotANumber
	}
	if !d.IsInteger() {
		return 0, domain.ErrNotInteger
	}
	qty := d.IntPart()
	if qty <= 0 {
		return 0, domain.ErrNonPositive
	}
	return qty, nil
}

package alert_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/mini-erp/internal/domain/alert"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
)

// El umbral es inclusivo: saldo 5 alerta, saldo 6 no.
func TestEvaluate_UmbralInclusivo(t *testing.T) {
	products := []entity.Product{
		{ID: "P1", Name: "En el umbral", Price: decimal.NewFromInt(1), Quantity: 5},
		{ID: "P2", Name: "Justo encima", Price: decimal.NewFromInt(1), Quantity: 6},
		{ID: "P3", Name: "Agotado", Price: decimal.NewFromInt(1), Quantity: 0},
	}

	alerts := alert.Evaluate(products)
	require.Len(t, alerts, 2)
	assert.Equal(t, "P1", alerts[0].ProductID)
	assert.Equal(t, int64(5), alerts[0].Quantity)
	assert.Equal(t, "P3", alerts[1].ProductID)
}

func TestEvaluate_SinDeduplicacionEntreLlamadas(t *testing.T) {
	products := []entity.Product{
		{ID: "P1", Name: "Bajo", Price: decimal.NewFromInt(1), Quantity: 2},
	}

	// Cada invocación rederiva desde cero: mismas alertas en cada llamada.
	first := alert.Evaluate(products)
	second := alert.Evaluate(products)
	assert.Equal(t, first, second)
	require.Len(t, second, 1)
}

func TestEvaluate_CatalogoVacio(t *testing.T) {
	assert.Empty(t, alert.Evaluate(nil))
}

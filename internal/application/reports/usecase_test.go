package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/mini-erp/internal/application/reports"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/memory"
)

func newFixture(t *testing.T, products []entity.Product, movements []entity.Movement) *reports.UseCase {
	t.Helper()
	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewMovementRepository()
	for i := range products {
		require.NoError(t, productRepo.Create(&products[i]))
	}
	for i := range movements {
		require.NoError(t, movementRepo.Append(&movements[i]))
	}
	return reports.NewUseCase(productRepo, movementRepo)
}

func minuto(min int) time.Time {
	return time.Date(2026, time.August, 31, 9, min, 0, 0, time.Local)
}

func TestStockSnapshot(t *testing.T) {
	uc := newFixture(t, []entity.Product{
		{ID: "P1", Name: "Tornillos", Price: decimal.NewFromInt(2), Quantity: 40},
		{ID: "P2", Name: "Tuercas", Price: decimal.NewFromInt(1), Quantity: 3},
	}, nil)

	series, err := uc.StockSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "Tornillos", series[0].Name)
	assert.Equal(t, int64(40), series[0].Quantity)
	assert.Equal(t, "Tuercas", series[1].Name)
	assert.Equal(t, int64(3), series[1].Quantity)
}

func TestStockSnapshot_CatalogoVacio(t *testing.T) {
	uc := newFixture(t, nil, nil)

	_, err := uc.StockSnapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

// Entrada 5 y salida 2 en t1, entrada 3 en t2: buckets (t1, +3) y (t2, +3),
// acumulado [3, 6].
func TestStockEvolution_BucketsPorMinutoYAcumulado(t *testing.T) {
	t1, t2 := minuto(0), minuto(5)
	uc := newFixture(t, nil, []entity.Movement{
		{ProductID: "P1", Direction: entity.DirectionIn, Quantity: 5, Timestamp: t1},
		{ProductID: "P2", Direction: entity.DirectionOut, Quantity: 2, Timestamp: t1},
		{ProductID: "P1", Direction: entity.DirectionIn, Quantity: 3, Timestamp: t2},
	})

	series, err := uc.StockEvolution(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.True(t, series[0].Timestamp.Equal(t1))
	assert.Equal(t, int64(3), series[0].Cumulative)
	assert.True(t, series[1].Timestamp.Equal(t2))
	assert.Equal(t, int64(6), series[1].Cumulative)
}

// La serie es monótona en el índice (fechas ascendentes), no en el valor:
// una salida grande puede hacer bajar el acumulado.
func TestStockEvolution_AcumuladoPuedeBajar(t *testing.T) {
	uc := newFixture(t, nil, []entity.Movement{
		{ProductID: "P1", Direction: entity.DirectionIn, Quantity: 10, Timestamp: minuto(0)},
		{ProductID: "P1", Direction: entity.DirectionOut, Quantity: 4, Timestamp: minuto(1)},
		{ProductID: "P1", Direction: entity.DirectionIn, Quantity: 1, Timestamp: minuto(2)},
	})

	series, err := uc.StockEvolution(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, []int64{10, 6, 7}, []int64{
		series[0].Cumulative, series[1].Cumulative, series[2].Cumulative,
	})
}

func TestStockEvolution_LibroVacio(t *testing.T) {
	uc := newFixture(t, nil, nil)

	_, err := uc.StockEvolution(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

// Vector de prueba de la curva ABC: A(precio 10, qty 10) vale 100 y
// B(precio 1, qty 1) vale 1; orden [A, B], fracciones [100/101, 1].
func TestABCCurve_VectorExacto(t *testing.T) {
	uc := newFixture(t, []entity.Product{
		{ID: "B", Name: "B", Price: decimal.NewFromInt(1), Quantity: 1},
		{ID: "A", Name: "A", Price: decimal.NewFromInt(10), Quantity: 10},
	}, nil)

	series, err := uc.ABCCurve(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "A", series[0].Name)
	assert.True(t, series[0].Value.Equal(decimal.NewFromInt(100)))
	expected := decimal.NewFromInt(100).Div(decimal.NewFromInt(101))
	assert.True(t, series[0].CumulativeShare.Equal(expected),
		"fracción acumulada de A: %s", series[0].CumulativeShare)

	assert.Equal(t, "B", series[1].Name)
	assert.True(t, series[1].CumulativeShare.Equal(decimal.NewFromInt(1)),
		"la última fracción siempre cierra en 1")
}

func TestABCCurve_CatalogoVacio(t *testing.T) {
	uc := newFixture(t, nil, nil)

	_, err := uc.ABCCurve(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

// Con valor total cero la curva es indefinida: se reporta DivideByZero y la
// curva queda vacía.
func TestABCCurve_ValorTotalCero(t *testing.T) {
	uc := newFixture(t, []entity.Product{
		{ID: "P1", Name: "Sin stock", Price: decimal.NewFromInt(10), Quantity: 0},
		{ID: "P2", Name: "Gratis", Price: decimal.Zero, Quantity: 50},
	}, nil)

	series, err := uc.ABCCurve(context.Background())
	assert.ErrorIs(t, err, domain.ErrDivideByZero)
	assert.Empty(t, series)
}

// Lecturas idempotentes: repetir la derivación sin mutación intermedia
// produce series idénticas.
func TestReportes_LecturasIdempotentes(t *testing.T) {
	uc := newFixture(t, []entity.Product{
		{ID: "P1", Name: "Tornillos", Price: decimal.NewFromInt(2), Quantity: 40},
	}, []entity.Movement{
		{ProductID: "P1", Direction: entity.DirectionIn, Quantity: 40, Timestamp: minuto(0)},
	})

	snap1, err := uc.StockSnapshot(context.Background())
	require.NoError(t, err)
	snap2, err := uc.StockSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap1, snap2)

	evo1, err := uc.StockEvolution(context.Background())
	require.NoError(t, err)
	evo2, err := uc.StockEvolution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, evo1, evo2)

	abc1, err := uc.ABCCurve(context.Background())
	require.NoError(t, err)
	abc2, err := uc.ABCCurve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, abc1, abc2)
}

package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/memory"
)

type fixture struct {
	products  *memory.ProductRepo
	movements *memory.MovementRepo
	uc        *inventory.ApplyMovementUseCase
}

func newFixture(t *testing.T, initial ...entity.Product) *fixture {
	t.Helper()
	products := memory.NewProductRepository()
	movements := memory.NewMovementRepository()
	for i := range initial {
		require.NoError(t, products.Create(&initial[i]))
	}
	txRunner := memory.NewTxRunner(products, movements)
	return &fixture{
		products:  products,
		movements: movements,
		uc:        inventory.NewApplyMovementUseCase(txRunner, products),
	}
}

func producto(id string, qty int64) entity.Product {
	return entity.Product{ID: id, Name: "Producto " + id, Price: decimal.NewFromInt(10), Quantity: qty}
}

func TestApplyMovement_EntradaYSalida(t *testing.T) {
	f := newFixture(t, producto("P1", 10))

	result, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionIn, "5")
	require.NoError(t, err)
	assert.Equal(t, int64(15), result.Product.Quantity)
	assert.Equal(t, int64(1), result.Movement.SequenceID)
	assert.Equal(t, "E", result.Movement.Direction)

	result, err = f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionOut, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(8), result.Product.Quantity)
	assert.Equal(t, int64(2), result.Movement.SequenceID)

	// El asiento queda con resolución de minuto.
	recorded, err := f.movements.GetAll()
	require.NoError(t, err)
	require.Len(t, recorded, 2)
	assert.Zero(t, recorded[0].Timestamp.Second())
	assert.Zero(t, recorded[0].Timestamp.Nanosecond())
}

// Invariante: el saldo siempre es la cantidad inicial más la suma firmada de
// los movimientos aplicados con éxito.
func TestApplyMovement_InvarianteDelSaldo(t *testing.T) {
	f := newFixture(t, producto("P1", 20))

	steps := []struct {
		dir entity.Direction
		qty string
	}{
		{entity.DirectionIn, "5"},
		{entity.DirectionOut, "3"},
		{entity.DirectionIn, "2,0"},
		{entity.DirectionOut, "10"},
		{entity.DirectionIn, "1"},
	}
	for _, s := range steps {
		_, err := f.uc.ApplyMovement(context.Background(), "P1", s.dir, s.qty)
		require.NoError(t, err)
	}

	movements, err := f.movements.GetAll()
	require.NoError(t, err)
	var signed int64
	for _, m := range movements {
		signed += m.SignedQuantity()
	}

	p, err := f.products.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, int64(20)+signed, p.Quantity)
	assert.Equal(t, int64(15), p.Quantity)
}

func TestApplyMovement_StockInsuficiente(t *testing.T) {
	f := newFixture(t, producto("P1", 4))

	_, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionOut, "5")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo no deja ningún efecto: ni saldo ni asiento.
	p, err := f.products.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Quantity)

	movements, err := f.movements.GetAll()
	require.NoError(t, err)
	assert.Empty(t, movements)

	// Retirar exactamente el saldo sí es válido (el saldo nunca es negativo,
	// pero puede llegar a cero).
	result, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionOut, "4")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Product.Quantity)
}

func TestApplyMovement_Rechazos(t *testing.T) {
	f := newFixture(t, producto("P1", 10))

	cases := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"texto no numérico", "abc", domain.ErrNotANumber},
		{"fracción", "2.5", domain.ErrNotInteger},
		{"cero", "0", domain.ErrNonPositive},
		{"vacío", "", domain.ErrEmptyInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionOut, tc.raw)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Ningún rechazo dejó rastro en el libro.
	movements, err := f.movements.GetAll()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestApplyMovement_ComaDecimalAceptada(t *testing.T) {
	f := newFixture(t, producto("P1", 0))

	result, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionIn, "2,0")
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Product.Quantity)
	assert.Equal(t, int64(2), result.Movement.Quantity)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ApplyMovement(context.Background(), "NADA", entity.DirectionIn, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_DireccionInvalida(t *testing.T) {
	f := newFixture(t, producto("P1", 10))

	_, err := f.uc.ApplyMovement(context.Background(), "P1", entity.Direction("X"), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las alertas se rederivan sobre el catálogo completo tras cada movimiento.
func TestApplyMovement_AlertasTrasMovimiento(t *testing.T) {
	f := newFixture(t, producto("P1", 8), producto("P2", 2))

	result, err := f.uc.ApplyMovement(context.Background(), "P1", entity.DirectionOut, "3")
	require.NoError(t, err)

	// P1 queda en 5 (umbral inclusive) y P2 sigue en 2: dos alertas.
	require.Len(t, result.Alerts, 2)
	assert.Equal(t, "P1", result.Alerts[0].ProductID)
	assert.Equal(t, int64(5), result.Alerts[0].Quantity)
	assert.Equal(t, "P2", result.Alerts[1].ProductID)
}

// brokenTxRunner simula un almacén indisponible al confirmar.
type brokenTxRunner struct{}

func (brokenTxRunner) Run(_ context.Context, _ func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return errors.New("connection refused")
}

// Si la persistencia falla, la operación termina en ErrStorage y no se
// confirma nada; el proceso sigue aceptando operaciones.
func TestApplyMovement_FalloDeAlmacen(t *testing.T) {
	products := memory.NewProductRepository()
	p := producto("P1", 10)
	require.NoError(t, products.Create(&p))
	uc := inventory.NewApplyMovementUseCase(brokenTxRunner{}, products)

	_, err := uc.ApplyMovement(context.Background(), "P1", entity.DirectionIn, "1")
	assert.ErrorIs(t, err, domain.ErrStorage)

	got, err := products.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Quantity)
}

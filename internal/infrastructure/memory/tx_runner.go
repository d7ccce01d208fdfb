package memory

import (
	"context"

	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner emula la transacción del almacén sobre los repositorios en
// memoria: toma un snapshot antes de ejecutar fn y lo restaura si fn falla,
// de modo que el todo-o-nada del motor de movimientos también se cumpla en
// las pruebas.
type TxRunner struct {
	products  *ProductRepo
	movements *MovementRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(products *ProductRepo, movements *MovementRepo) *TxRunner {
	return &TxRunner{products: products, movements: movements}
}

// Run ejecuta fn contra los repos vivos; si fn retorna error, restaura el
// estado previo (rollback).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	prodSnap := r.products.snapshot()
	movSnap, seqSnap := r.movements.snapshot()

	if err := fn(r.products, r.movements); err != nil {
		r.products.restore(prodSnap)
		r.movements.restore(movSnap, seqSnap)
		return err
	}
	return nil
}

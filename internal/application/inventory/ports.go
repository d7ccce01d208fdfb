package inventory

import (
	"context"

	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén,
// pasando repositorios atados a esa transacción. Garantiza que saldo y
// libro de movimientos se confirmen juntos o no se confirme nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

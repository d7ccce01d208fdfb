package memory

import (
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	movements []entity.Movement
	nextSeq   int64
}

// NewMovementRepository construye el libro vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{movements: []entity.Movement{}, nextSeq: 1}
}

// Append registra el movimiento asignando el siguiente SequenceID.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	movement.SequenceID = r.nextSeq
	r.nextSeq++
	r.movements = append(r.movements, *movement)
	return nil
}

// GetAll devuelve una copia del libro en orden de registro.
func (r *MovementRepo) GetAll() ([]entity.Movement, error) {
	out := make([]entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

// DeleteByProduct elimina todos los movimientos del producto.
func (r *MovementRepo) DeleteByProduct(productID string) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

func (r *MovementRepo) snapshot() ([]entity.Movement, int64) {
	out := make([]entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out, r.nextSeq
}

func (r *MovementRepo) restore(movements []entity.Movement, nextSeq int64) {
	r.movements = movements
	r.nextSeq = nextSeq
}

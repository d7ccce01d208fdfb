package repository

import "github.com/tu-usuario/mini-erp/internal/domain/entity"

// MovementRepository puerto de persistencia del libro de movimientos.
// El libro es append-only: no existe operación de actualización ni reorden.
type MovementRepository interface {
	// Append registra el movimiento y asigna SequenceID (monótono creciente)
	// sobre la entidad recibida.
	Append(movement *entity.Movement) error
	// GetAll devuelve el libro completo en orden de registro.
	GetAll() ([]entity.Movement, error)
	// DeleteByProduct elimina todos los movimientos de un producto
	// (cascada al eliminar el producto).
	DeleteByProduct(productID string) error
}

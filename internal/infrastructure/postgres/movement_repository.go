package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta, lee todo y elimina por producto:
// el libro no se actualiza ni se reordena.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append registra el movimiento; el BIGSERIAL asigna el SequenceID.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, direction, quantity, moved_at)
		VALUES ($1, $2, $3, $4)
		RETURNING sequence_id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID,
		string(movement.Direction),
		movement.Quantity,
		movement.Timestamp.Format(entity.TimestampLayout),
	).Scan(&movement.SequenceID)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// GetAll devuelve el libro completo en orden de registro.
func (r *MovementRepo) GetAll() ([]entity.Movement, error) {
	query := `
		SELECT sequence_id, product_id, direction, quantity, moved_at
		FROM movements ORDER BY sequence_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.Movement
	for rows.Next() {
		var m entity.Movement
		var direction, movedAt string
		if err := rows.Scan(&m.SequenceID, &m.ProductID, &direction, &m.Quantity, &movedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Direction = entity.Direction(direction)
		m.Timestamp, err = time.ParseInLocation(entity.TimestampLayout, movedAt, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse moved_at %q: %w", movedAt, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// DeleteByProduct elimina todos los movimientos del producto (cascada).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}

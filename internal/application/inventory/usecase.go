// Package inventory contiene el motor transaccional de movimientos de
// estoque: valida la solicitud, actualiza el saldo del producto y registra
// el asiento en el libro como una unidad atómica.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/alert"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// ApplyMovementUseCase aplica movimientos de estoque de forma transaccional
// (entrada E / salida S) con bloqueo de fila y Commit/Rollback.
type ApplyMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// ApplyMovement valida y aplica un movimiento contra un producto.
//
// La validación (existencia del producto, parseo de la cantidad en texto
// libre, saldo suficiente para salidas) es pura: no tiene efecto observable.
// La mutación ocurre completa dentro de la transacción: nuevo saldo y asiento
// del libro se confirman juntos; si cualquiera de los dos falla, ninguno
// queda persistido y el fallo sube envuelto en domain.ErrStorage.
//
// Tras confirmar, las alertas de stock bajo se rederivan sobre el catálogo
// completo.
func (uc *ApplyMovementUseCase) ApplyMovement(
	ctx context.Context,
	productID string,
	direction entity.Direction,
	rawQuantity string,
) (*dto.MovementResult, error) {
	if !direction.Valid() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, asDomainOrStorage(err)
	}

	qty, err := ParseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}

	if direction == entity.DirectionOut && qty > product.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	movement := entity.Movement{
		ProductID: productID,
		Direction: direction,
		Quantity:  qty,
		Timestamp: uc.now().Truncate(time.Minute),
	}

	var updated entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Relee el saldo bajo bloqueo de fila: la verificación previa fue
		// contra una lectura sin lock.
		locked, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		newBalance := locked.Quantity + direction.Sign()*qty
		if newBalance < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(productID, newBalance); err != nil {
			return err
		}
		if err := movementRepo.Append(&movement); err != nil {
			return err
		}
		updated = *locked
		updated.Quantity = newBalance
		return nil
	})
	if err != nil {
		return nil, asDomainOrStorage(err)
	}

	alerts, err := uc.evaluateAlerts()
	if err != nil {
		return nil, err
	}

	return &dto.MovementResult{
		Product:  toProductResponse(updated),
		Movement: toMovementResponse(movement),
		Alerts:   alerts,
	}, nil
}

// evaluateAlerts rederiva las alertas de stock bajo sobre el catálogo completo.
func (uc *ApplyMovementUseCase) evaluateAlerts() ([]dto.LowStockAlert, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return toAlertDTOs(alert.Evaluate(products)), nil
}

// asDomainOrStorage deja pasar los centinelas de dominio tal cual y envuelve
// cualquier otro fallo (almacén caído, transacción abortada) en ErrStorage.
func asDomainOrStorage(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func toMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		SequenceID: m.SequenceID,
		ProductID:  m.ProductID,
		Direction:  string(m.Direction),
		Quantity:   m.Quantity,
		Timestamp:  m.Timestamp,
	}
}

func toAlertDTOs(alerts []alert.LowStock) []dto.LowStockAlert {
	if len(alerts) == 0 {
		return nil
	}
	out := make([]dto.LowStockAlert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.LowStockAlert{
			ProductID: a.ProductID,
			Name:      a.Name,
			Quantity:  a.Quantity,
		})
	}
	return out
}

// Package catalog contiene los casos de uso del catálogo de productos:
// registro, eliminación con cascada sobre el libro, listado y consulta.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/alert"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// UseCase casos de uso del catálogo. El saldo solo lo muta el motor de
// movimientos; aquí únicamente se fija el valor inicial al registrar.
type UseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo}
}

// Register valida y registra un producto nuevo.
// Precio y cantidad llegan como texto del formulario: precio debe parsear
// como número real >= 0 y cantidad como entero >= 0; ID y nombre no pueden
// ser vacíos. Cualquier fallo de forma es ErrInvalidInput; un ID repetido es
// ErrDuplicateKey. Tras insertar se rederivan las alertas de stock bajo.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterProductRequest) (*dto.ProductResult, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(in.Quantity), 10, 64)
	if err != nil || quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	product := &entity.Product{
		ID:       id,
		Name:     name,
		Category: strings.TrimSpace(in.Category),
		Price:    price,
		Quantity: quantity,
	}
	if err := uc.productRepo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	alerts, err := uc.evaluateAlerts()
	if err != nil {
		return nil, err
	}
	return &dto.ProductResult{
		Product: toProductResponse(*product),
		Alerts:  alerts,
	}, nil
}

// Delete elimina un producto y todos sus movimientos como una sola
// operación. La cascada sobre el libro es una decisión de diseño explícita
// (limpieza, no archivo histórico).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Delete(id); err != nil {
			return err
		}
		return movementRepo.DeleteByProduct(id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// List devuelve el catálogo completo en el orden natural del almacén.
func (uc *UseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Products devuelve las entidades del catálogo para colaboradores externos
// (exportación de planilla).
func (uc *UseCase) Products(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return products, nil
}

// Get retorna un producto por ID o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

// Alerts evalúa las alertas de stock bajo sobre el catálogo actual.
// Se invoca también una vez al arrancar el proceso.
func (uc *UseCase) Alerts(ctx context.Context) ([]dto.LowStockAlert, error) {
	return uc.evaluateAlerts()
}

func (uc *UseCase) evaluateAlerts() ([]dto.LowStockAlert, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	lows := alert.Evaluate(products)
	if len(lows) == 0 {
		return nil, nil
	}
	out := make([]dto.LowStockAlert, 0, len(lows))
	for _, a := range lows {
		out = append(out, dto.LowStockAlert{ProductID: a.ProductID, Name: a.Name, Quantity: a.Quantity})
	}
	return out, nil
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

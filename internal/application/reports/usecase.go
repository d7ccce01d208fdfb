// Package reports deriva las tres series de reporte a partir del catálogo y
// del libro de movimientos: snapshot de stock, curva de evolución y curva
// ABC de valor. Todas son lecturas puras; la serie resultante se entrega tal
// cual al colaborador de gráficos, que la consume de forma opaca.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// UseCase derivaciones de reporte (solo lectura).
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// StockSnapshot devuelve un par (nombre, saldo) por producto, en el orden
// natural del catálogo. Con catálogo vacío el reporte se rehúsa con
// ErrEmptyDataset en lugar de mostrarse vacío.
func (uc *UseCase) StockSnapshot(ctx context.Context) ([]dto.SnapshotPoint, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(products) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	points := make([]dto.SnapshotPoint, 0, len(products))
	for _, p := range products {
		points = append(points, dto.SnapshotPoint{Name: p.Name, Quantity: p.Quantity})
	}
	return points, nil
}

// StockEvolution agrupa las cantidades firmadas de todos los movimientos por
// minuto (sin distinguir producto), ordena los buckets ascendente por fecha y
// acumula la suma corriente. La secuencia es monótona en el índice, no en el
// valor. Con libro vacío retorna ErrEmptyDataset.
func (uc *UseCase) StockEvolution(ctx context.Context) ([]dto.EvolutionPoint, error) {
	movements, err := uc.movementRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(movements) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	buckets := make(map[int64]int64)
	times := make(map[int64]time.Time)
	for _, m := range movements {
		k := m.Timestamp.Unix()
		buckets[k] += m.SignedQuantity()
		if _, ok := times[k]; !ok {
			times[k] = m.Timestamp
		}
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	points := make([]dto.EvolutionPoint, 0, len(keys))
	var cumulative int64
	for _, k := range keys {
		cumulative += buckets[k]
		points = append(points, dto.EvolutionPoint{
			Timestamp:  times[k],
			Cumulative: cumulative,
		})
	}
	return points, nil
}

// ABCCurve calcula valor = precio × cantidad por producto, ordena descendente
// por valor (orden estable para empates) y acumula la fracción del valor
// total. Con catálogo vacío retorna ErrEmptyDataset; con valor total cero la
// curva es indefinida y se retorna ErrDivideByZero (curva vacía).
func (uc *UseCase) ABCCurve(ctx context.Context) ([]dto.ABCPoint, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(products) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value().GreaterThan(sorted[j].Value())
	})

	total := decimal.Zero
	for _, p := range sorted {
		total = total.Add(p.Value())
	}
	if total.IsZero() {
		return nil, domain.ErrDivideByZero
	}

	points := make([]dto.ABCPoint, 0, len(sorted))
	cumulative := decimal.Zero
	for _, p := range sorted {
		value := p.Value()
		cumulative = cumulative.Add(value)
		points = append(points, dto.ABCPoint{
			Name:            p.Name,
			Value:           value,
			CumulativeShare: cumulative.Div(total),
		})
	}
	return points, nil
}

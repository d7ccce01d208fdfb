// Package memory implementa los puertos de persistencia sobre slices en
// memoria. Se usa en las suites de prueba y como modo sin base de datos.
package memory

import (
	"github.com/tu-usuario/mini-erp/internal/domain"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del catálogo. El orden natural del
// almacén es el orden de inserción.
type ProductRepo struct {
	products []entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: []entity.Product{}}
}

// Create inserta un producto nuevo; ErrDuplicateKey si el ID ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.ID == product.ID {
			return domain.ErrDuplicateKey
		}
	}
	r.products = append(r.products, *product)
	return nil
}

// GetAll devuelve una copia del catálogo en orden de inserción.
func (r *ProductRepo) GetAll() ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retorna el producto o ErrNotFound.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetForUpdate equivale a GetByID: no hay concurrencia que bloquear en memoria.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// UpdateQuantity persiste el nuevo saldo del producto.
func (r *ProductRepo) UpdateQuantity(id string, quantity int64) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto del catálogo.
func (r *ProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepo) snapshot() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *ProductRepo) restore(products []entity.Product) {
	r.products = products
}

package repository

import "github.com/tu-usuario/mini-erp/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo de productos.
// El orden de GetAll es el orden natural del almacén (sin sort garantizado).
type ProductRepository interface {
	// Create inserta un producto nuevo. Retorna domain.ErrDuplicateKey si el ID ya existe.
	Create(product *entity.Product) error
	// GetAll devuelve el catálogo completo en el orden natural del almacén.
	GetAll() ([]entity.Product, error)
	// GetByID retorna el producto o domain.ErrNotFound.
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate retorna el producto bloqueando su fila dentro de la
	// transacción en curso. Fuera de una transacción equivale a GetByID.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateQuantity persiste el nuevo saldo. Retorna domain.ErrNotFound si el producto no existe.
	UpdateQuantity(id string, quantity int64) error
	// Delete elimina el producto. Retorna domain.ErrNotFound si no existe.
	Delete(id string) error
}

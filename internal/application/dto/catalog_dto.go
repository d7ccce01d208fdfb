package dto

import "github.com/shopspring/decimal"

// RegisterProductRequest body para POST /api/products.
// Precio y cantidad llegan como texto libre desde el formulario de registro;
// el caso de uso los valida y parsea.
type RegisterProductRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// ProductResult resultado de una mutación del catálogo: el producto afectado
// y las alertas de stock bajo rederivadas sobre el catálogo completo.
type ProductResult struct {
	Product ProductResponse `json:"product"`
	Alerts  []LowStockAlert `json:"alerts,omitempty"`
}

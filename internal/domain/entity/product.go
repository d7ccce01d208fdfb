package entity

import "github.com/shopspring/decimal"

// Product representa un SKU del catálogo de estoque.
// Quantity es el saldo autoritativo: siempre igual a la cantidad inicial
// más la suma firmada de los movimientos aplicados. Solo el motor de
// movimientos (o la eliminación del producto) lo muta.
type Product struct {
	ID       string          // clave primaria opaca, inmutable
	Name     string          // nombre visible, no vacío
	Category string          // texto libre, opcional
	Price    decimal.Decimal // precio unitario, >= 0
	Quantity int64           // saldo actual, nunca negativo
}

// Value devuelve el valor de inventario del producto (precio × cantidad).
// Base de la curva ABC.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Quantity viaja como texto libre: la regla de validación (coma decimal,
// número entero, positivo) pertenece al caso de uso, no al transporte.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Direction string `json:"direction"` // "E" entrada, "S" salida
	Quantity  string `json:"quantity"`
}

// MovementResponse representación de un movimiento registrado.
type MovementResponse struct {
	SequenceID int64     `json:"sequence_id"`
	ProductID  string    `json:"product_id"`
	Direction  string    `json:"direction"`
	Quantity   int64     `json:"quantity"`
	Timestamp  time.Time `json:"timestamp"`
}

// MovementResult resultado de aplicar un movimiento: producto con el saldo
// nuevo, el asiento registrado y las alertas rederivadas.
type MovementResult struct {
	Product  ProductResponse  `json:"product"`
	Movement MovementResponse `json:"movement"`
	Alerts   []LowStockAlert  `json:"alerts,omitempty"`
}

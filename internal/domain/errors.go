package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación fallida
// retorna exactamente uno de estos centinelas; la capa de presentación
// decide cómo mostrarlos. Ninguno tumba el proceso.
var (
	// Registro y consulta de productos.
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicateKey = errors.New("el ID ya existe")
	ErrNotFound     = errors.New("producto no encontrado")

	// Validación de la cantidad en texto libre (movimientos).
	ErrEmptyInput        = errors.New("digite la cantidad")
	ErrNotANumber        = errors.New("digite solo números")
	ErrNotInteger        = errors.New("la cantidad debe ser un número entero")
	ErrNonPositive       = errors.New("la cantidad debe ser mayor que cero")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Persistencia: fatal para la operación solicitada, no para el proceso.
	ErrStorage = errors.New("error de almacenamiento")

	// Reportes.
	ErrEmptyDataset = errors.New("no hay datos para mostrar")
	ErrDivideByZero = errors.New("el valor total del inventario es cero")
)

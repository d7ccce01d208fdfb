package entity

import "time"

// Direction indica el sentido de un movimiento de estoque.
// Los códigos coinciden con los persistidos: "E" entrada, "S" salida.
type Direction string

const (
	DirectionIn  Direction = "E" // entrada
	DirectionOut Direction = "S" // salida
)

// Valid reporta si el código de dirección es conocido.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Sign devuelve el signo con que la cantidad del movimiento afecta el saldo.
func (d Direction) Sign() int64 {
	if d == DirectionOut {
		return -1
	}
	return 1
}

// TimestampLayout formato de persistencia de la fecha del movimiento,
// con resolución de minuto.
const TimestampLayout = "2006-01-02 15:04"

// Movement es una entrada del libro de movimientos (append-only).
// Una vez registrada es inmutable: no existe actualización ni reorden.
// Eliminar un producto elimina en cascada sus movimientos (limpieza
// deliberada, no preservación histórica).
type Movement struct {
	SequenceID int64     // asignado al registrar, monótono creciente
	ProductID  string    // referencia al producto existente al registrar
	Direction  Direction // E o S
	Quantity   int64     // cantidad movida, siempre > 0
	Timestamp  time.Time // reloj del sistema truncado al minuto
}

// SignedQuantity devuelve la cantidad con signo (+entrada, -salida).
func (m Movement) SignedQuantity() int64 {
	return m.Direction.Sign() * m.Quantity
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las dos relaciones del núcleo si no existen; se ejecuta
// al arrancar el proceso. La fecha del movimiento se persiste como texto
// 'YYYY-MM-DD HH:MM' (resolución de minuto).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			category TEXT,
			price    NUMERIC NOT NULL,
			quantity BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movements (
			sequence_id BIGSERIAL PRIMARY KEY,
			product_id  TEXT NOT NULL,
			direction   TEXT NOT NULL,
			quantity    BIGINT NOT NULL,
			moved_at    TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

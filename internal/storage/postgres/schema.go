package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS empresas (
	id                   UUID PRIMARY KEY,
	nombre               TEXT NOT NULL,
	estado               TEXT NOT NULL,
	prima_riesgo         NUMERIC(8,5) NOT NULL,
	factor_integracion   NUMERIC(8,4),
	dias_aguinaldo       NUMERIC(6,2) NOT NULL,
	prima_vacacional     NUMERIC(6,4) NOT NULL,
	zona_fronteriza      BOOLEAN NOT NULL DEFAULT FALSE,
	absorbe_cuota_obrera BOOLEAN NOT NULL DEFAULT FALSE,
	dias_por_mes         NUMERIC(4,1) NOT NULL,
	creado_en            TIMESTAMPTZ NOT NULL DEFAULT now(),
	actualizado_en       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS trabajadores (
	id                    UUID PRIMARY KEY,
	empresa_id            UUID NOT NULL REFERENCES empresas(id) ON DELETE CASCADE,
	nombre                TEXT NOT NULL,
	salario_diario        NUMERIC(12,2) NOT NULL,
	antiguedad_anios      INTEGER NOT NULL DEFAULT 0,
	dias_trabajados       NUMERIC(5,2) NOT NULL DEFAULT 0,
	dias_vacaciones_extra INTEGER NOT NULL DEFAULT 0,
	creado_en             TIMESTAMPTZ NOT NULL DEFAULT now(),
	actualizado_en        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_trabajadores_empresa ON trabajadores (empresa_id);
`

// Migrate creates the tables when they do not exist yet. Results are not
// persisted, so the schema is just the two configuration tables.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}

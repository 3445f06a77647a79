package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcarrillo/cpgo/internal/storage"
)

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, nombre, estado, prima_riesgo, factor_integracion,
	dias_aguinaldo, prima_vacacional, zona_fronteriza, absorbe_cuota_obrera,
	dias_por_mes, creado_en, actualizado_en`

// CompanyRepo implements storage.CompanyRepository over PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persists a new company. A zero ID is replaced with a fresh UUID.
func (r *CompanyRepo) Create(ctx context.Context, c *storage.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	query := `
		INSERT INTO empresas (id, nombre, estado, prima_riesgo, factor_integracion,
			dias_aguinaldo, prima_vacacional, zona_fronteriza, absorbe_cuota_obrera, dias_por_mes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING creado_en, actualizado_en`
	err := r.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.State, c.RiskPremium, c.IntegrationFactor,
		c.AguinaldoDays, c.VacationPremiumRate, c.BorderZone, c.AbsorbEmployeeQuota,
		c.DaysPerMonth,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// Get returns the company with the given ID.
func (r *CompanyRepo) Get(ctx context.Context, id uuid.UUID) (*storage.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM empresas WHERE id = $1`
	c, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return c, nil
}

// List returns companies ordered by creation time, newest first.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*storage.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM empresas
		ORDER BY creado_en DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*storage.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update rewrites every configuration column of an existing company.
func (r *CompanyRepo) Update(ctx context.Context, c *storage.Company) error {
	query := `
		UPDATE empresas SET nombre = $2, estado = $3, prima_riesgo = $4,
			factor_integracion = $5, dias_aguinaldo = $6, prima_vacacional = $7,
			zona_fronteriza = $8, absorbe_cuota_obrera = $9, dias_por_mes = $10,
			actualizado_en = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.State, c.RiskPremium, c.IntegrationFactor,
		c.AguinaldoDays, c.VacationPremiumRate, c.BorderZone, c.AbsorbEmployeeQuota,
		c.DaysPerMonth,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a company and, via cascade, its roster.
func (r *CompanyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*storage.Company, error) {
	var c storage.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.State, &c.RiskPremium, &c.IntegrationFactor,
		&c.AguinaldoDays, &c.VacationPremiumRate, &c.BorderZone, &c.AbsorbEmployeeQuota,
		&c.DaysPerMonth, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

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

var _ storage.WorkerRepository = (*WorkerRepo)(nil)

const workerColumns = `id, empresa_id, nombre, salario_diario, antiguedad_anios,
	dias_trabajados, dias_vacaciones_extra, creado_en, actualizado_en`

// WorkerRepo implements storage.WorkerRepository over PostgreSQL.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository builds the persistence adapter for roster members.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

// Create persists a new worker under its company. A zero ID is replaced with
// a fresh UUID. A missing company surfaces as ErrNotFound.
func (r *WorkerRepo) Create(ctx context.Context, w *storage.Worker) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	query := `
		INSERT INTO trabajadores (id, empresa_id, nombre, salario_diario,
			antiguedad_anios, dias_trabajados, dias_vacaciones_extra)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING creado_en, actualizado_en`
	err := r.pool.QueryRow(ctx, query,
		w.ID, w.CompanyID, w.Name, w.DailySalary,
		w.SeniorityYears, w.DaysWorked, w.ExtraVacationDays,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// Get returns the worker with the given ID.
func (r *WorkerRepo) Get(ctx context.Context, id uuid.UUID) (*storage.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM trabajadores WHERE id = $1`
	w, err := scanWorker(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return w, nil
}

// ListByCompany returns the whole roster of one company in insertion order.
func (r *WorkerRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*storage.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM trabajadores
		WHERE empresa_id = $1 ORDER BY creado_en, id`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()

	var list []*storage.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Update rewrites every roster column of an existing worker.
func (r *WorkerRepo) Update(ctx context.Context, w *storage.Worker) error {
	query := `
		UPDATE trabajadores SET nombre = $2, salario_diario = $3,
			antiguedad_anios = $4, dias_trabajados = $5, dias_vacaciones_extra = $6,
			actualizado_en = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.DailySalary, w.SeniorityYears, w.DaysWorked, w.ExtraVacationDays,
	)
	if err != nil {
		return fmt.Errorf("update trabajador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a worker from the roster.
func (r *WorkerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM trabajadores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trabajador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanWorker(row pgx.Row) (*storage.Worker, error) {
	var w storage.Worker
	err := row.Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.DailySalary, &w.SeniorityYears,
		&w.DaysWorked, &w.ExtraVacationDays, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Package storage defines the persistence ports for companies and their
// rosters. Calculation results are never stored; they are recomputed from the
// catalog on every request.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jcarrillo/cpgo/internal/domain"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("no encontrado")

// Company is a persisted employer configuration.
type Company struct {
	ID uuid.UUID `json:"id"`
	domain.CompanyConfig
	CreatedAt time.Time `json:"creado_en"`
	UpdatedAt time.Time `json:"actualizado_en"`
}

// Worker is a persisted roster member of one company.
type Worker struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"empresa_id"`
	domain.Worker
	CreatedAt time.Time `json:"creado_en"`
	UpdatedAt time.Time `json:"actualizado_en"`
}

// CompanyRepository persists employer configurations.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Get(ctx context.Context, id uuid.UUID) (*Company, error)
	List(ctx context.Context, limit, offset int) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkerRepository persists roster members.
type WorkerRepository interface {
	Create(ctx context.Context, worker *Worker) error
	Get(ctx context.Context, id uuid.UUID) (*Worker, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*Worker, error)
	Update(ctx context.Context, worker *Worker) error
	Delete(ctx context.Context, id uuid.UUID) error
}

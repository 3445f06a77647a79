// Package config parses the YAML scenario files the CLI and TUI consume: a
// company configuration, its roster of workers and an optional catalog
// override for a different fiscal year.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// Scenario is one parsed input file: the employer, the workers to cost and
// the catalog the numbers should come from.
type Scenario struct {
	// CatalogPath points at a YAML catalog for another fiscal year. Empty
	// means the built-in current catalog.
	CatalogPath string `yaml:"catalogo,omitempty"`

	Company domain.CompanyConfig `yaml:"empresa"`
	Workers []domain.Worker      `yaml:"trabajadores"`
}

// Parser handles parsing and validation of scenario files.
type Parser struct{}

// NewParser creates a new scenario parser.
func NewParser() *Parser {
	return &Parser{}
}

// LoadFile reads a scenario from a YAML file, resolves its catalog, applies
// company defaults and validates everything the calculators will rely on.
func (p *Parser) LoadFile(filename string) (*Scenario, *catalog.Catalog, error) {
	return p.LoadFileWithCatalog(filename, "")
}

// LoadFileWithCatalog reads a scenario but resolves rates from the given
// catalog file instead of the one the scenario names. An empty catalogPath
// keeps the scenario's own choice.
func (p *Parser) LoadFileWithCatalog(filename, catalogPath string) (*Scenario, *catalog.Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if catalogPath != "" {
		s.CatalogPath = catalogPath
	}
	return p.finish(&s)
}

// Parse decodes raw YAML and validates it.
func (p *Parser) Parse(data []byte) (*Scenario, *catalog.Catalog, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return p.finish(&s)
}

func (p *Parser) finish(s *Scenario) (*Scenario, *catalog.Catalog, error) {
	cat, err := catalog.Load(s.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	s.Company.ApplyDefaults()
	if err := p.Validate(s, cat); err != nil {
		return nil, nil, err
	}
	return s, cat, nil
}

// Validate checks the scenario against the resolved catalog.
func (p *Parser) Validate(s *Scenario, cat *catalog.Catalog) error {
	if strings.TrimSpace(s.Company.Name) == "" {
		return fmt.Errorf("empresa: %w", domain.NewValidationError("nombre", "es obligatorio"))
	}
	if err := cat.ValidateCompany(&s.Company); err != nil {
		return fmt.Errorf("empresa %q: %w", s.Company.Name, err)
	}
	if len(s.Workers) == 0 {
		return fmt.Errorf("se requiere al menos un trabajador")
	}
	for i, w := range s.Workers {
		if err := validateWorker(&w); err != nil {
			return fmt.Errorf("trabajador %d (%s): %w", i+1, w.Name, err)
		}
	}
	return nil
}

func validateWorker(w *domain.Worker) error {
	if strings.TrimSpace(w.Name) == "" {
		return domain.NewValidationError("nombre", "es obligatorio")
	}
	if !w.DailySalary.IsPositive() {
		return domain.NewValidationError("salario_diario", "debe ser positivo")
	}
	if w.SeniorityYears < 0 {
		return domain.NewValidationError("antiguedad_anios", "no puede ser negativa")
	}
	if w.ExtraVacationDays < 0 {
		return domain.NewValidationError("dias_vacaciones_extra", "no puede ser negativo")
	}
	return nil
}

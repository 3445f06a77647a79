// Package solver inverts the cost engine: given a target monthly net salary,
// it searches for the gross salary that produces it. Net take-home is
// monotone in gross (withholdings only grow with income), so a plain
// bisection over the gross space converges fast.
package solver

import (
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// Options configures the bisection.
type Options struct {
	// Tolerance is the acceptable difference, in pesos, between the
	// achieved and the target monthly net.
	Tolerance decimal.Decimal

	// MaxIterations caps the search. Exhaustion is signaled on the
	// Outcome, never as an error.
	MaxIterations int
}

// DefaultOptions takes the net tolerance from the catalog and caps the
// search at 50 iterations, plenty for a centavo over any realistic bracket.
func DefaultOptions(cat *catalog.Catalog) Options {
	return Options{Tolerance: cat.NetTolerance, MaxIterations: 50}
}

// Outcome reports the solved salary and how the search ended. Result is the
// full cost snapshot at the final candidate, converged or not.
type Outcome struct {
	Result       *domain.CalculationResult `json:"resultado"`
	GrossDaily   decimal.Decimal           `json:"salario_diario"`
	GrossMonthly decimal.Decimal           `json:"salario_bruto_mensual"`
	AchievedNet  decimal.Decimal           `json:"neto_obtenido"`
	TargetNet    decimal.Decimal           `json:"neto_objetivo"`
	Iterations   int                       `json:"iteraciones"`
	Converged    bool                      `json:"convergio"`
}

// Solver searches gross salaries against one engine.
type Solver struct {
	Engine  *calculation.CostEngine
	Options Options
}

// New creates a solver with the default options for the engine's catalog.
func New(engine *calculation.CostEngine) *Solver {
	return &Solver{Engine: engine, Options: DefaultOptions(engine.Catalog)}
}

// SolveNet finds the gross salary whose monthly net take-home lands within
// tolerance of targetNet. The worker's DailySalary field is ignored; its
// seniority and benefit fields shape the withholdings. A target below what
// the legal minimum wage nets is unsatisfiable and rejected as a validation
// error. Running out of iterations returns the best candidate with
// Converged false.
func (s *Solver) SolveNet(company *domain.CompanyConfig, worker domain.Worker, targetNet decimal.Decimal) (*Outcome, error) {
	co := *company
	co.ApplyDefaults()

	two := decimal.NewFromInt(2)
	minimumWage := s.Engine.Catalog.MinimumWage(co.BorderZone)
	lowMonthly := minimumWage.Mul(co.DaysPerMonth)

	// The net at the wage floor is the least any legal gross can pay out.
	floor := worker
	floor.DailySalary = minimumWage
	floorResult, err := s.Engine.Calculate(&co, &floor)
	if err != nil {
		return nil, err
	}
	if targetNet.LessThan(floorResult.NetSalary.Sub(s.Options.Tolerance)) {
		return nil, domain.NewValidationError("neto_objetivo",
			"el neto objetivo %s es menor al neto de salario minimo %s",
			targetNet.StringFixed(2), floorResult.NetSalary.StringFixed(2))
	}
	if floorResult.NetSalary.Sub(targetNet).Abs().LessThanOrEqual(s.Options.Tolerance) {
		return s.outcome(floorResult, targetNet, 0, true), nil
	}

	low := lowMonthly
	high := decimal.Max(targetNet.Mul(two), lowMonthly.Mul(two))

	var last *Outcome
	for i := 1; i <= s.Options.MaxIterations; i++ {
		midMonthly := low.Add(high).Div(two)

		candidate := worker
		candidate.DailySalary = midMonthly.Div(co.DaysPerMonth)
		result, err := s.Engine.Calculate(&co, &candidate)
		if err != nil {
			return nil, err
		}

		diff := result.NetSalary.Sub(targetNet)
		last = s.outcome(result, targetNet, i, false)
		if diff.Abs().LessThanOrEqual(s.Options.Tolerance) {
			last.Converged = true
			return last, nil
		}
		if diff.IsPositive() {
			high = midMonthly
		} else {
			low = midMonthly
		}
	}
	return last, nil
}

func (s *Solver) outcome(result *domain.CalculationResult, targetNet decimal.Decimal, iterations int, converged bool) *Outcome {
	return &Outcome{
		Result:       result,
		GrossDaily:   result.DailySalary,
		GrossMonthly: result.NominalMonthly,
		AchievedNet:  result.NetSalary,
		TargetNet:    targetNet,
		Iterations:   iterations,
		Converged:    converged,
	}
}

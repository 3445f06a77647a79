package solver

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

func testEngine(t *testing.T) *calculation.CostEngine {
	t.Helper()
	engine, err := calculation.NewCostEngine(catalog.Mexico2026())
	require.NoError(t, err)
	return engine
}

func testCompany() *domain.CompanyConfig {
	co := &domain.CompanyConfig{
		Name:        "Comercializadora Norte SA de CV",
		State:       "nuevo_leon",
		RiskPremium: decimal.NewFromFloat(0.005),
	}
	co.ApplyDefaults()
	return co
}

func TestSolveNetRoundTrip(t *testing.T) {
	engine := testEngine(t)
	s := New(engine)
	company := testCompany()
	worker := domain.Worker{Name: "Ana", SeniorityYears: 2}

	// Forward pass fixes the target.
	forward := worker
	forward.DailySalary = decimal.NewFromInt(650)
	known, err := engine.Calculate(company, &forward)
	require.NoError(t, err)

	outcome, err := s.SolveNet(company, worker, known.NetSalary)
	require.NoError(t, err)

	assert.True(t, outcome.Converged, "expected convergence after %d iterations", outcome.Iterations)
	assert.LessOrEqual(t, outcome.Iterations, s.Options.MaxIterations)

	diff := outcome.AchievedNet.Sub(known.NetSalary).Abs()
	assert.True(t, diff.LessThanOrEqual(s.Options.Tolerance),
		"achieved %s vs target %s", outcome.AchievedNet, known.NetSalary)

	grossDiff := outcome.GrossMonthly.Sub(known.NominalMonthly).Abs()
	assert.True(t, grossDiff.LessThan(decimal.NewFromInt(1)),
		"gross %s should land near %s", outcome.GrossMonthly, known.NominalMonthly)
	require.NotNil(t, outcome.Result)
	assert.True(t, outcome.Result.NetSalary.Equal(outcome.AchievedNet))
}

func TestSolveNetAcrossTargets(t *testing.T) {
	engine := testEngine(t)
	s := New(engine)
	company := testCompany()
	worker := domain.Worker{Name: "t", SeniorityYears: 1}

	targets := []decimal.Decimal{
		decimal.NewFromInt(12000),
		decimal.NewFromInt(20000),
		decimal.NewFromInt(45000),
		decimal.NewFromInt(90000),
	}

	for _, target := range targets {
		outcome, err := s.SolveNet(company, worker, target)
		require.NoError(t, err, "target %s", target)
		assert.True(t, outcome.Converged, "target %s did not converge in %d iterations", target, outcome.Iterations)
		assert.True(t, outcome.AchievedNet.Sub(target).Abs().LessThanOrEqual(s.Options.Tolerance),
			"target %s achieved %s", target, outcome.AchievedNet)
		assert.True(t, outcome.GrossMonthly.GreaterThanOrEqual(target),
			"gross %s cannot be below the net target %s", outcome.GrossMonthly, target)
	}
}

func TestSolveNetAtTheWageFloor(t *testing.T) {
	engine := testEngine(t)
	s := New(engine)
	company := testCompany()
	company.AbsorbEmployeeQuota = true
	worker := domain.Worker{Name: "t", SeniorityYears: 1}

	// With absorption the floor nets the full minimum: 315.04 * 30.4.
	target := decimal.NewFromFloat(9577.22)
	outcome, err := s.SolveNet(company, worker, target)
	require.NoError(t, err)

	assert.True(t, outcome.Converged)
	assert.Equal(t, 0, outcome.Iterations, "floor targets resolve without searching")
	assert.True(t, outcome.Result.IsMinimumWage)
}

func TestSolveNetRejectsSubMinimumTarget(t *testing.T) {
	engine := testEngine(t)
	s := New(engine)
	worker := domain.Worker{Name: "t", SeniorityYears: 1}

	_, err := s.SolveNet(testCompany(), worker, decimal.NewFromInt(5000))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "expected ValidationError, got %T", err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "neto_objetivo", ve.Field)
}

func TestSolveNetSignalsExhaustion(t *testing.T) {
	engine := testEngine(t)
	s := &Solver{
		Engine: engine,
		// Tolerance finer than the centavo granularity of a rounded net,
		// aimed between two representable values: unreachable by design.
		Options: Options{Tolerance: decimal.NewFromFloat(0.001), MaxIterations: 8},
	}
	worker := domain.Worker{Name: "t", SeniorityYears: 1}

	target := decimal.NewFromFloat(20000.005)
	outcome, err := s.SolveNet(testCompany(), worker, target)
	require.NoError(t, err, "exhaustion is signaled, not erred")
	require.NotNil(t, outcome)

	assert.False(t, outcome.Converged)
	assert.Equal(t, s.Options.MaxIterations, outcome.Iterations)
	assert.NotNil(t, outcome.Result, "the best candidate still comes back")
}

func TestSolveNetUsesBorderFloor(t *testing.T) {
	engine := testEngine(t)
	s := New(engine)
	company := testCompany()
	company.State = "baja_california"
	company.BorderZone = true
	worker := domain.Worker{Name: "t", SeniorityYears: 1}

	// Satisfiable in the interior, under the border floor net.
	_, err := s.SolveNet(company, worker, decimal.NewFromInt(10000))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNetIsMonotonicInGross(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()

	// Withholding rounding may wiggle a couple of centavos between
	// neighboring grosses; real decreases would break the bisection.
	slack := decimal.NewFromFloat(0.02)
	prev := decimal.NewFromInt(-1)
	for daily := 320; daily <= 3320; daily += 50 {
		worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(int64(daily)), SeniorityYears: 1}
		result, err := engine.Calculate(company, worker)
		require.NoError(t, err)
		if result.NetSalary.LessThan(prev.Sub(slack)) {
			t.Fatalf("net decreased at daily %d: %s after %s", daily, result.NetSalary, prev)
		}
		prev = result.NetSalary
	}
}

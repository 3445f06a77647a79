package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

func testEngine(t *testing.T) *CostEngine {
	t.Helper()
	engine, err := NewCostEngine(catalog.Mexico2026())
	require.NoError(t, err)
	return engine
}

func testCompany() *domain.CompanyConfig {
	co := &domain.CompanyConfig{
		Name:        "Operadora del Centro SA de CV",
		State:       "jalisco",
		RiskPremium: decimal.NewFromFloat(0.005),
	}
	co.ApplyDefaults()
	return co
}

func TestCalculateMinimumWageWorker(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	company.AbsorbEmployeeQuota = true

	worker := &domain.Worker{
		Name:           "Juan Perez",
		DailySalary:    decimal.NewFromFloat(315.04),
		SeniorityYears: 1,
	}

	result, err := engine.Calculate(company, worker)
	require.NoError(t, err)

	assert.True(t, result.IsMinimumWage)

	// Wage-floor regime: no ISR, no employee withholding, the employer
	// absorbs the quota and the worker takes home the full salary.
	assert.True(t, result.ISR.ToWithhold.IsZero(), "isr: %s", result.ISR.ToWithhold)
	assert.True(t, result.ISR.BeforeSubsidy.IsZero())
	assert.True(t, result.IMSSEmployee.Total.IsZero())
	assert.True(t, result.AbsorbedEmployeeQuota.Equal(decimal.NewFromFloat(238.66)),
		"absorbed: %s", result.AbsorbedEmployeeQuota)
	assert.True(t, result.NetSalary.Equal(result.NominalMonthly),
		"net %s should equal nominal %s", result.NetSalary, result.NominalMonthly)

	// Monthly accruals for the statutory benefits at one year of seniority.
	assert.True(t, result.Provisions.Total.Equal(decimal.NewFromFloat(787.60)),
		"provisions: %s", result.Provisions.Total)

	// 2026 integration factor for 12 vacation days: (365 + 15 + 3) / 365.
	assert.True(t, result.IntegrationFactor.Equal(decimal.NewFromFloat(1.0493)),
		"factor: %s", result.IntegrationFactor)
	assert.True(t, result.SBCDaily.Equal(decimal.NewFromFloat(330.57)), "sbc: %s", result.SBCDaily)

	assert.True(t, result.Infonavit.Equal(decimal.NewFromFloat(502.47)), "infonavit: %s", result.Infonavit)
	assert.True(t, result.ISN.Equal(decimal.NewFromFloat(191.54)), "isn: %s", result.ISN)

	expectedBurden := result.IMSSEmployer.Total.
		Add(result.Infonavit).
		Add(result.ISN).
		Add(result.AbsorbedEmployeeQuota)
	assert.True(t, result.TotalEmployerBurden.Equal(expectedBurden))

	expectedCost := result.NominalMonthly.
		Add(result.TotalEmployerBurden).
		Add(result.Provisions.Total)
	assert.True(t, result.TotalCost.Equal(expectedCost))
	assert.True(t, result.CostFactor.GreaterThan(decimal.NewFromInt(1)))
}

func TestCalculateRejectsSubMinimumSalary(t *testing.T) {
	engine := testEngine(t)

	worker := &domain.Worker{
		Name:        "Mal Pagado",
		DailySalary: decimal.NewFromFloat(250.00),
	}

	_, err := engine.Calculate(testCompany(), worker)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "expected ValidationError, got %T", err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "salario_diario", ve.Field)
}

func TestMinimumWageToleranceBand(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name          string
		daily         decimal.Decimal
		wantErr       bool
		isMinimumWage bool
	}{
		{"exact minimum", decimal.NewFromFloat(315.04), false, true},
		{"one percent above", decimal.NewFromFloat(318.19), false, true},
		{"just past the band", decimal.NewFromFloat(318.20), false, false},
		{"one percent below still legal", decimal.NewFromFloat(311.89), false, true},
		{"below the band is illegal", decimal.NewFromFloat(311.88), true, false},
		{"clearly above", decimal.NewFromFloat(500.00), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := &domain.Worker{Name: "t", DailySalary: tt.daily, SeniorityYears: 1}
			result, err := engine.Calculate(testCompany(), worker)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isMinimumWage, result.IsMinimumWage)
		})
	}
}

func TestBorderZoneUsesItsOwnFloor(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	company.State = "baja_california"
	company.BorderZone = true

	// Legal in the interior, below the border floor.
	worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromFloat(315.04), SeniorityYears: 1}
	_, err := engine.Calculate(company, worker)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	worker.DailySalary = decimal.NewFromFloat(440.87)
	result, err := engine.Calculate(company, worker)
	require.NoError(t, err)
	assert.True(t, result.IsMinimumWage)
}

func TestSBCIsCappedAtTwentyFiveUMA(t *testing.T) {
	engine := testEngine(t)

	worker := &domain.Worker{
		Name:           "Directora",
		DailySalary:    decimal.NewFromInt(4000),
		SeniorityYears: 10,
	}

	result, err := engine.Calculate(testCompany(), worker)
	require.NoError(t, err)
	assert.True(t, result.SBCDaily.Equal(decimal.NewFromFloat(2929.75)),
		"sbc should cap at 25 UMA, got %s", result.SBCDaily)
}

func TestIntegrationFactorOverride(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	pinned := decimal.NewFromFloat(1.0600)
	company.IntegrationFactor = &pinned

	worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(800), SeniorityYears: 7}
	result, err := engine.Calculate(company, worker)
	require.NoError(t, err)
	assert.True(t, result.IntegrationFactor.Equal(pinned))
	assert.True(t, result.SBCDaily.Equal(decimal.NewFromFloat(848.00)), "sbc: %s", result.SBCDaily)
}

func TestRegularWorkerWithholdings(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	company.DaysPerMonth = decimal.NewFromInt(30)

	// 500 daily over 30 days: exactly the 15,000 monthly tariff example.
	worker := &domain.Worker{Name: "Ana", DailySalary: decimal.NewFromInt(500), SeniorityYears: 3}

	result, err := engine.Calculate(company, worker)
	require.NoError(t, err)

	assert.False(t, result.IsMinimumWage)
	assert.True(t, result.NominalMonthly.Equal(decimal.NewFromInt(15000)))
	assert.True(t, result.ISR.ToWithhold.Equal(decimal.NewFromFloat(1402.82)),
		"isr: %s", result.ISR.ToWithhold)
	assert.True(t, result.ISR.Subsidy.IsZero())
	assert.True(t, result.IMSSEmployee.Total.IsPositive())
	assert.True(t, result.AbsorbedEmployeeQuota.IsZero())

	expectedNet := result.NominalMonthly.
		Sub(result.IMSSEmployee.Total).
		Sub(result.ISR.ToWithhold)
	assert.True(t, result.NetSalary.Equal(expectedNet))
	assert.True(t, result.NetSalary.LessThan(result.NominalMonthly))
}

func TestDaysWorkedScaling(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()

	full := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(600), SeniorityYears: 2}
	half := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(600), SeniorityYears: 2,
		DaysWorked: decimal.NewFromInt(15)}

	fullResult, err := engine.Calculate(company, full)
	require.NoError(t, err)
	halfResult, err := engine.Calculate(company, half)
	require.NoError(t, err)

	// Defaulted days echo the company convention.
	assert.True(t, fullResult.DaysWorked.Equal(company.DaysPerMonth))
	assert.True(t, halfResult.DaysWorked.Equal(decimal.NewFromInt(15)))

	assert.True(t, halfResult.IMSSEmployer.Total.LessThan(fullResult.IMSSEmployer.Total))
	// The monthly provisioning view is unchanged by contributed days.
	assert.True(t, halfResult.NominalMonthly.Equal(fullResult.NominalMonthly))
	assert.True(t, halfResult.Provisions.Total.Equal(fullResult.Provisions.Total))
}

func TestCalculateInputValidation(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name   string
		mutate func(w *domain.Worker)
		field  string
	}{
		{"zero salary", func(w *domain.Worker) { w.DailySalary = decimal.Zero }, "salario_diario"},
		{"negative seniority", func(w *domain.Worker) { w.SeniorityYears = -1 }, "antiguedad_anios"},
		{"too many days", func(w *domain.Worker) { w.DaysWorked = decimal.NewFromInt(32) }, "dias_trabajados"},
		{"negative days", func(w *domain.Worker) { w.DaysWorked = decimal.NewFromInt(-1) }, "dias_trabajados"},
		{"negative extra vacations", func(w *domain.Worker) { w.ExtraVacationDays = -2 }, "dias_vacaciones_extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(500), SeniorityYears: 1}
			tt.mutate(worker)

			_, err := engine.Calculate(testCompany(), worker)
			require.Error(t, err)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCalculateRejectsBadCompany(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	company.RiskPremium = decimal.NewFromFloat(0.30)

	worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(500), SeniorityYears: 1}
	_, err := engine.Calculate(company, worker)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestResultIsDetachedFromInputs(t *testing.T) {
	engine := testEngine(t)
	company := testCompany()
	worker := &domain.Worker{Name: "t", DailySalary: decimal.NewFromInt(500), SeniorityYears: 1}

	result, err := engine.Calculate(company, worker)
	require.NoError(t, err)

	// Mutating the inputs afterwards must not reach into the snapshot.
	worker.DailySalary = decimal.NewFromInt(999)
	company.State = "cdmx"

	assert.True(t, result.DailySalary.Equal(decimal.NewFromInt(500)))
	again, err := engine.Calculate(testCompany(), &domain.Worker{
		Name: "t", DailySalary: decimal.NewFromInt(500), SeniorityYears: 1})
	require.NoError(t, err)
	assert.True(t, result.TotalCost.Equal(again.TotalCost), "engine must be stateless between calls")
}

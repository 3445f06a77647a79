// Package calculation implements the monthly employer-cost computation:
// IMSS quotas, ISR withholding, benefit provisions and the orchestration
// that turns a company configuration and a worker into a complete cost
// snapshot.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// CostEngine orchestrates one full calculation: wage floor check,
// integration factor, SBC capping, IMSS, INFONAVIT, ISN, provisions, ISR and
// the aggregate cost figures. The engine holds no per-call state and is safe
// for concurrent use.
type CostEngine struct {
	Catalog    *catalog.Catalog
	IMSS       *IMSSCalculator
	ISR        *ISRCalculator
	Provisions *ProvisionsCalculator
}

// NewCostEngine wires the calculators for one validated catalog.
func NewCostEngine(cat *catalog.Catalog) (*CostEngine, error) {
	isr, err := NewISRCalculator(cat)
	if err != nil {
		return nil, err
	}
	return &CostEngine{
		Catalog:    cat,
		IMSS:       NewIMSSCalculator(cat),
		ISR:        isr,
		Provisions: NewProvisionsCalculator(cat),
	}, nil
}

// Calculate produces the employer-cost snapshot for one worker and one
// monthly period. Inputs are validated first; a salary below the legal
// minimum (beyond the catalog tolerance) is rejected, a salary at the
// minimum switches on the wage-floor regime: ISR exemption and, when the
// company opted in, employer absorption of the employee IMSS quota.
func (ce *CostEngine) Calculate(company *domain.CompanyConfig, worker *domain.Worker) (*domain.CalculationResult, error) {
	if err := ce.Catalog.ValidateCompany(company); err != nil {
		return nil, err
	}
	if err := validateWorker(worker); err != nil {
		return nil, err
	}

	minimumWage := ce.Catalog.MinimumWage(company.BorderZone)
	tolerance := minimumWage.Mul(ce.Catalog.MinimumWageTolerance)
	if worker.DailySalary.LessThan(minimumWage.Sub(tolerance)) {
		return nil, domain.NewValidationError("salario_diario",
			"el salario diario %s es menor al minimo legal %s",
			worker.DailySalary.StringFixed(2), minimumWage.StringFixed(2))
	}
	isMinimumWage := worker.DailySalary.Sub(minimumWage).Abs().LessThanOrEqual(tolerance)

	days := worker.DaysWorked
	if days.IsZero() {
		days = company.DaysPerMonth
	}

	factor := ce.integrationFactor(company, worker.SeniorityYears)
	sbcDaily := money(decimal.Min(worker.DailySalary.Mul(factor), ce.Catalog.SBCCap()))
	sbcMonthly := money(sbcDaily.Mul(company.DaysPerMonth))
	nominalMonthly := money(worker.DailySalary.Mul(company.DaysPerMonth))

	employer := ce.IMSS.Employer(sbcDaily, days, company.RiskPremium)
	employee, absorbed := ce.IMSS.Employee(sbcDaily, days, isMinimumWage, company.AbsorbEmployeeQuota)

	isr := ce.ISR.Compute(nominalMonthly, isMinimumWage)
	provisions := ce.Provisions.Compute(
		worker.DailySalary, worker.SeniorityYears,
		company.AguinaldoDays, company.VacationPremiumRate,
		worker.ExtraVacationDays)

	infonavit := money(sbcMonthly.Mul(ce.Catalog.InfonavitRate))

	stateRate, ok := ce.Catalog.StateRate(company.State)
	if !ok {
		return nil, domain.NewValidationError("estado", "estado desconocido: %q", company.State)
	}
	isn := money(nominalMonthly.Mul(stateRate))

	burden := employer.Total.Add(infonavit).Add(isn).Add(absorbed)
	totalCost := nominalMonthly.Add(burden).Add(provisions.Total)
	netSalary := nominalMonthly.Sub(employee.Total).Sub(isr.ToWithhold)

	return &domain.CalculationResult{
		WorkerName:     worker.Name,
		DailySalary:    worker.DailySalary,
		SeniorityYears: worker.SeniorityYears,
		DaysWorked:     days,

		IsMinimumWage:     isMinimumWage,
		IntegrationFactor: factor,
		SBCDaily:          sbcDaily,
		SBCMonthly:        sbcMonthly,
		NominalMonthly:    nominalMonthly,

		IMSSEmployer:          employer,
		IMSSEmployee:          employee,
		AbsorbedEmployeeQuota: absorbed,

		Infonavit: infonavit,
		ISN:       isn,

		Provisions: provisions,
		ISR:        isr,

		TotalEmployerBurden: burden,
		TotalCost:           totalCost,
		CostFactor:          totalCost.Div(nominalMonthly).Round(4),
		NetSalary:           netSalary,
	}, nil
}

// integrationFactor returns the company override when pinned, otherwise the
// statutory factor: a full year of salary plus the legal minimum aguinaldo
// and the vacation premium on the seniority-table days, spread over 365.
// Richer company benefits affect provisions, not the contribution base.
func (ce *CostEngine) integrationFactor(company *domain.CompanyConfig, seniorityYears int) decimal.Decimal {
	if company.IntegrationFactor != nil {
		return *company.IntegrationFactor
	}
	year := decimal.NewFromInt(365)
	vacationDays := decimal.NewFromInt(int64(ce.Catalog.VacationDays(seniorityYears)))
	benefitDays := ce.Catalog.LegalMinAguinaldoDays.Add(vacationDays.Mul(ce.Catalog.LegalMinVacationPremium))
	return year.Add(benefitDays).Div(year).Round(4)
}

func validateWorker(w *domain.Worker) error {
	if !w.DailySalary.IsPositive() {
		return domain.NewValidationError("salario_diario", "debe ser positivo")
	}
	if w.SeniorityYears < 0 {
		return domain.NewValidationError("antiguedad_anios", "no puede ser negativa")
	}
	if w.DaysWorked.IsNegative() || w.DaysWorked.GreaterThan(decimal.NewFromInt(31)) {
		return domain.NewValidationError("dias_trabajados", "debe estar entre 0 y 31")
	}
	if w.ExtraVacationDays < 0 {
		return domain.NewValidationError("dias_vacaciones_extra", "no puede ser negativo")
	}
	return nil
}

// money rounds to centavos, the precision statutory amounts settle in.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

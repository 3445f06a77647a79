package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// ProvisionsCalculator accrues the annual benefits one month at a time, so
// the employer books aguinaldo, vacations and the vacation premium as the
// worker earns them instead of taking the hit in December.
type ProvisionsCalculator struct {
	Catalog *catalog.Catalog
}

// NewProvisionsCalculator creates the calculator for one catalog year.
func NewProvisionsCalculator(cat *catalog.Catalog) *ProvisionsCalculator {
	return &ProvisionsCalculator{Catalog: cat}
}

// Compute returns the monthly accrual detail. Vacation days come from the
// statutory seniority table plus any contractual extra days; aguinaldo days
// and the premium rate come from company policy (already validated to be at
// or above the legal minimums).
func (prc *ProvisionsCalculator) Compute(dailySalary decimal.Decimal, seniorityYears int, aguinaldoDays, premiumRate decimal.Decimal, extraVacationDays int) domain.ProvisionsDetail {
	twelve := decimal.NewFromInt(12)
	vacationDays := decimal.NewFromInt(int64(prc.Catalog.VacationDays(seniorityYears) + extraVacationDays))

	aguinaldo := dailySalary.Mul(aguinaldoDays).Div(twelve)
	vacaciones := dailySalary.Mul(vacationDays).Div(twelve)
	prima := vacaciones.Mul(premiumRate)

	return domain.ProvisionsDetail{
		Aguinaldo:       money(aguinaldo),
		Vacaciones:      money(vacaciones),
		PrimaVacacional: money(prima),
		Total:           money(aguinaldo.Add(vacaciones).Add(prima)),
	}
}

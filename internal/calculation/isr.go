package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// ISRCalculator computes the monthly income tax withholding per the anexo 8
// tariff: fixed quota plus the marginal rate over the bracket floor, minus
// the employment subsidy when the income qualifies.
type ISRCalculator struct {
	Brackets         []catalog.ISRBracket
	SubsidyThreshold decimal.Decimal
	SubsidyAmount    decimal.Decimal
}

// NewISRCalculator builds the calculator from a catalog. A tariff that
// cannot classify every income is rejected here rather than guessed at
// withholding time.
func NewISRCalculator(cat *catalog.Catalog) (*ISRCalculator, error) {
	if len(cat.ISRBrackets) == 0 {
		return nil, domain.NewCatalogError(cat.ID(), "la tarifa de ISR esta vacia")
	}
	if !cat.ISRBrackets[len(cat.ISRBrackets)-1].Upper.IsZero() {
		return nil, domain.NewCatalogError(cat.ID(), "el ultimo renglon de la tarifa de ISR debe ser abierto")
	}
	return &ISRCalculator{
		Brackets:         cat.ISRBrackets,
		SubsidyThreshold: cat.SubsidyThreshold,
		SubsidyAmount:    cat.SubsidyAmount,
	}, nil
}

// Compute returns the withholding detail for a monthly taxable income.
// Minimum-wage earners are exempt: no tax and no subsidy, all zeros.
func (isc *ISRCalculator) Compute(taxable decimal.Decimal, isMinimumWage bool) domain.ISRDetail {
	d := domain.ISRDetail{
		Taxable:       taxable,
		BeforeSubsidy: decimal.Zero,
		Subsidy:       decimal.Zero,
		ToWithhold:    decimal.Zero,
	}
	if isMinimumWage || !taxable.IsPositive() {
		return d
	}

	b := isc.bracketFor(taxable)
	d.BeforeSubsidy = money(b.FixedQuota.Add(taxable.Sub(b.Lower).Mul(b.Rate)))
	if taxable.LessThanOrEqual(isc.SubsidyThreshold) {
		d.Subsidy = isc.SubsidyAmount
	}
	d.ToWithhold = decimal.Max(decimal.Zero, d.BeforeSubsidy.Sub(d.Subsidy))
	return d
}

// bracketFor scans the tariff by upper bound. The last row is open-ended, so
// any income past the penultimate bound lands there.
func (isc *ISRCalculator) bracketFor(taxable decimal.Decimal) catalog.ISRBracket {
	for _, b := range isc.Brackets {
		if b.Upper.IsZero() || taxable.LessThanOrEqual(b.Upper) {
			return b
		}
	}
	return isc.Brackets[len(isc.Brackets)-1]
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcarrillo/cpgo/internal/catalog"
)

func TestProvisionsMinimumWageWorker(t *testing.T) {
	prc := NewProvisionsCalculator(catalog.Mexico2026())

	// One year of seniority: 12 vacation days, statutory 15-day aguinaldo
	// and 25% premium.
	d := prc.Compute(
		decimal.NewFromFloat(315.04), 1,
		decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 0)

	assert.True(t, d.Aguinaldo.Equal(decimal.NewFromFloat(393.80)), "aguinaldo: %s", d.Aguinaldo)
	assert.True(t, d.Vacaciones.Equal(decimal.NewFromFloat(315.04)), "vacaciones: %s", d.Vacaciones)
	assert.True(t, d.PrimaVacacional.Equal(decimal.NewFromFloat(78.76)), "prima: %s", d.PrimaVacacional)
	assert.True(t, d.Total.Equal(decimal.NewFromFloat(787.60)), "total: %s", d.Total)
}

func TestProvisionsTotalRoundsOnce(t *testing.T) {
	prc := NewProvisionsCalculator(catalog.Mexico2026())

	// 100.33 daily with 14 vacation days produces components whose rounded
	// sum differs from the rounded raw sum by one centavo.
	d := prc.Compute(
		decimal.NewFromFloat(100.33), 2,
		decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 0)

	assert.True(t, d.Total.Equal(decimal.NewFromFloat(271.73)), "total: %s", d.Total)

	componentSum := d.Aguinaldo.Add(d.Vacaciones).Add(d.PrimaVacacional)
	diff := d.Total.Sub(componentSum).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"total %s and component sum %s drifted more than a centavo", d.Total, componentSum)
}

func TestProvisionsExtraVacationDays(t *testing.T) {
	prc := NewProvisionsCalculator(catalog.Mexico2026())
	daily := decimal.NewFromInt(600)

	base := prc.Compute(daily, 1, decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 0)
	extra := prc.Compute(daily, 1, decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 2)

	// Two extra days on top of the 12 statutory ones: 14/12 of a day each month.
	expected := decimal.NewFromInt(600).Mul(decimal.NewFromInt(14)).Div(decimal.NewFromInt(12)).Round(2)
	assert.True(t, extra.Vacaciones.Equal(expected), "vacaciones: %s", extra.Vacaciones)
	assert.True(t, extra.Total.GreaterThan(base.Total))
}

func TestProvisionsBeforeFirstYear(t *testing.T) {
	prc := NewProvisionsCalculator(catalog.Mexico2026())

	d := prc.Compute(
		decimal.NewFromInt(500), 0,
		decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 0)

	assert.True(t, d.Vacaciones.IsZero(), "no vacation accrual before a completed year")
	assert.True(t, d.PrimaVacacional.IsZero())
	assert.True(t, d.Aguinaldo.Equal(decimal.NewFromFloat(625.00)), "aguinaldo accrues from day one: %s", d.Aguinaldo)
	assert.True(t, d.Total.Equal(decimal.NewFromFloat(625.00)))
}

func TestProvisionsScaleWithCompanyPolicy(t *testing.T) {
	prc := NewProvisionsCalculator(catalog.Mexico2026())
	daily := decimal.NewFromInt(300)

	statutory := prc.Compute(daily, 5, decimal.NewFromInt(15), decimal.NewFromFloat(0.25), 0)
	richer := prc.Compute(daily, 5, decimal.NewFromInt(30), decimal.NewFromFloat(0.50), 0)

	assert.True(t, richer.Aguinaldo.Equal(statutory.Aguinaldo.Mul(decimal.NewFromInt(2))))
	assert.True(t, richer.PrimaVacacional.Equal(statutory.PrimaVacacional.Mul(decimal.NewFromInt(2))))
	assert.True(t, richer.Vacaciones.Equal(statutory.Vacaciones))
}

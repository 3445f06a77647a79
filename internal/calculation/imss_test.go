package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarrillo/cpgo/internal/catalog"
)

func fullMonth() decimal.Decimal {
	return decimal.NewFromFloat(30.4)
}

func TestEmployerQuotas(t *testing.T) {
	imc := NewIMSSCalculator(catalog.Mexico2026())
	risk := decimal.NewFromFloat(0.005)

	t.Run("all line items are non negative and additive", func(t *testing.T) {
		salaries := []decimal.Decimal{
			decimal.NewFromFloat(330.57),
			decimal.NewFromFloat(650.00),
			decimal.NewFromFloat(1500.00),
			decimal.NewFromFloat(2929.75),
		}
		for _, sbc := range salaries {
			d := imc.Employer(sbc, fullMonth(), risk)

			items := []decimal.Decimal{
				d.CuotaFija, d.Excedente, d.PrestacionesEnDinero, d.GastosMedicos,
				d.RiesgoTrabajo, d.InvalidezVida, d.Guarderias, d.Retiro, d.CesantiaVejez,
			}
			sum := decimal.Zero
			for _, item := range items {
				assert.False(t, item.IsNegative(), "negative item for sbc %s", sbc)
				sum = sum.Add(item)
			}
			assert.True(t, d.Total.Equal(sum), "total %s != sum of items %s for sbc %s", d.Total, sum, sbc)
		}
	})

	t.Run("excedente is zero at or below three umas", func(t *testing.T) {
		threeUMA := decimal.NewFromFloat(351.57)

		d := imc.Employer(threeUMA, fullMonth(), risk)
		assert.True(t, d.Excedente.IsZero(), "expected zero excedente, got %s", d.Excedente)

		d = imc.Employer(threeUMA.Add(decimal.NewFromInt(100)), fullMonth(), risk)
		assert.True(t, d.Excedente.IsPositive(), "expected positive excedente above 3 UMA")
	})

	t.Run("cuota fija does not depend on the salary", func(t *testing.T) {
		low := imc.Employer(decimal.NewFromFloat(330.57), fullMonth(), risk)
		high := imc.Employer(decimal.NewFromFloat(2000.00), fullMonth(), risk)
		assert.True(t, low.CuotaFija.Equal(high.CuotaFija),
			"cuota fija should be UMA-based: %s vs %s", low.CuotaFija, high.CuotaFija)
	})

	t.Run("risk premium only moves riesgo de trabajo", func(t *testing.T) {
		sbc := decimal.NewFromFloat(800.00)
		classI := imc.Employer(sbc, fullMonth(), decimal.NewFromFloat(0.005))
		classV := imc.Employer(sbc, fullMonth(), decimal.NewFromFloat(0.075))

		assert.True(t, classV.RiesgoTrabajo.GreaterThan(classI.RiesgoTrabajo))
		assert.True(t, classI.Retiro.Equal(classV.Retiro))
		assert.True(t, classI.CuotaFija.Equal(classV.CuotaFija))
	})

	t.Run("quotas scale with contributed days", func(t *testing.T) {
		sbc := decimal.NewFromFloat(500.00)
		full := imc.Employer(sbc, fullMonth(), risk)
		half := imc.Employer(sbc, decimal.NewFromInt(15), risk)
		assert.True(t, half.Total.LessThan(full.Total))
	})
}

func TestEmployeeQuotas(t *testing.T) {
	imc := NewIMSSCalculator(catalog.Mexico2026())

	t.Run("regular worker withholds all five items", func(t *testing.T) {
		d, absorbed := imc.Employee(decimal.NewFromFloat(800.00), fullMonth(), false, false)

		assert.True(t, absorbed.IsZero())
		assert.True(t, d.Excedente.IsPositive())
		assert.True(t, d.PrestacionesEnDinero.IsPositive())
		assert.True(t, d.GastosMedicos.IsPositive())
		assert.True(t, d.InvalidezVida.IsPositive())
		assert.True(t, d.CesantiaVejez.IsPositive())

		sum := d.Excedente.Add(d.PrestacionesEnDinero).Add(d.GastosMedicos).
			Add(d.InvalidezVida).Add(d.CesantiaVejez)
		assert.True(t, d.Total.Equal(sum))
	})

	t.Run("absorption zeroes the detail and reports the quota", func(t *testing.T) {
		sbc := decimal.NewFromFloat(330.57)
		withheld, zero := imc.Employee(sbc, fullMonth(), true, false)
		require.True(t, zero.IsZero())

		d, absorbed := imc.Employee(sbc, fullMonth(), true, true)
		assert.True(t, d.Total.IsZero())
		assert.True(t, d.PrestacionesEnDinero.IsZero())
		assert.True(t, d.CesantiaVejez.IsZero())
		assert.True(t, absorbed.Equal(withheld.Total),
			"absorbed %s should equal the would-be withholding %s", absorbed, withheld.Total)
		assert.True(t, absorbed.IsPositive())
	})

	t.Run("absorption flag is inert for non minimum wage", func(t *testing.T) {
		d, absorbed := imc.Employee(decimal.NewFromFloat(800.00), fullMonth(), false, true)
		assert.True(t, absorbed.IsZero())
		assert.True(t, d.Total.IsPositive())
	})
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// IMSSCalculator computes the employer and employee quotas of the Ley del
// Seguro Social for one contribution period. Bases follow the law: the cuota
// fija runs on the UMA, the excedente on the SBC portion above three UMAs,
// and every other branch on the full SBC.
type IMSSCalculator struct {
	Rates catalog.IMSSRates
	UMA   decimal.Decimal
}

// NewIMSSCalculator creates the calculator for one catalog year.
func NewIMSSCalculator(cat *catalog.Catalog) *IMSSCalculator {
	return &IMSSCalculator{Rates: cat.IMSS, UMA: cat.UMA}
}

// Employer returns the nine employer line items for the period. sbcDaily must
// already be capped at 25 UMA; days is the number of contributed days.
func (imc *IMSSCalculator) Employer(sbcDaily, days, riskPremium decimal.Decimal) domain.IMSSEmployerDetail {
	base := sbcDaily.Mul(days)
	fixedBase := imc.UMA.Mul(days)
	excedenteBase := imc.excedenteBase(sbcDaily).Mul(days)

	d := domain.IMSSEmployerDetail{
		CuotaFija:            money(fixedBase.Mul(imc.Rates.EmployerCuotaFija)),
		Excedente:            money(excedenteBase.Mul(imc.Rates.EmployerExcedente)),
		PrestacionesEnDinero: money(base.Mul(imc.Rates.EmployerPrestacionesEnDinero)),
		GastosMedicos:        money(base.Mul(imc.Rates.EmployerGastosMedicos)),
		RiesgoTrabajo:        money(base.Mul(riskPremium)),
		InvalidezVida:        money(base.Mul(imc.Rates.EmployerInvalidezVida)),
		Guarderias:           money(base.Mul(imc.Rates.EmployerGuarderias)),
		Retiro:               money(base.Mul(imc.Rates.EmployerRetiro)),
		CesantiaVejez:        money(base.Mul(imc.Rates.EmployerCesantiaVejez)),
	}
	d.Total = d.CuotaFija.
		Add(d.Excedente).
		Add(d.PrestacionesEnDinero).
		Add(d.GastosMedicos).
		Add(d.RiesgoTrabajo).
		Add(d.InvalidezVida).
		Add(d.Guarderias).
		Add(d.Retiro).
		Add(d.CesantiaVejez)
	return d
}

// Employee returns the five employee-side line items and the amount the
// employer absorbs. For a minimum-wage worker whose employer covers the
// quota (article 36 LSS), the detail is all zeros and the would-be total
// comes back as absorbed so the employer can book it.
func (imc *IMSSCalculator) Employee(sbcDaily, days decimal.Decimal, isMinimumWage, absorb bool) (domain.IMSSEmployeeDetail, decimal.Decimal) {
	base := sbcDaily.Mul(days)
	excedenteBase := imc.excedenteBase(sbcDaily).Mul(days)

	d := domain.IMSSEmployeeDetail{
		Excedente:            money(excedenteBase.Mul(imc.Rates.EmployeeExcedente)),
		PrestacionesEnDinero: money(base.Mul(imc.Rates.EmployeePrestacionesEnDinero)),
		GastosMedicos:        money(base.Mul(imc.Rates.EmployeeGastosMedicos)),
		InvalidezVida:        money(base.Mul(imc.Rates.EmployeeInvalidezVida)),
		CesantiaVejez:        money(base.Mul(imc.Rates.EmployeeCesantiaVejez)),
	}
	d.Total = d.Excedente.
		Add(d.PrestacionesEnDinero).
		Add(d.GastosMedicos).
		Add(d.InvalidezVida).
		Add(d.CesantiaVejez)

	if isMinimumWage && absorb {
		return domain.IMSSEmployeeDetail{
			Excedente:            decimal.Zero,
			PrestacionesEnDinero: decimal.Zero,
			GastosMedicos:        decimal.Zero,
			InvalidezVida:        decimal.Zero,
			CesantiaVejez:        decimal.Zero,
			Total:                decimal.Zero,
		}, d.Total
	}
	return d, decimal.Zero
}

func (imc *IMSSCalculator) excedenteBase(sbcDaily decimal.Decimal) decimal.Decimal {
	threshold := imc.UMA.Mul(decimal.NewFromInt(3))
	return decimal.Max(decimal.Zero, sbcDaily.Sub(threshold))
}

package domain

import (
	"github.com/shopspring/decimal"
)

// CompanyConfig carries the employer-side parameters that shape every
// calculation: the IMSS risk premium assigned to the company, the state whose
// payroll tax (ISN) applies, and the benefit policy (aguinaldo days, vacation
// premium) when it exceeds the legal minimums.
type CompanyConfig struct {
	Name  string `yaml:"nombre" json:"nombre"`
	State string `yaml:"estado" json:"estado"`

	// RiskPremium is the prima de riesgo de trabajo as a fraction
	// (e.g. 0.005 for class I). Assigned annually by IMSS per company.
	RiskPremium decimal.Decimal `yaml:"prima_riesgo" json:"prima_riesgo"`

	// IntegrationFactor, when set, overrides the statutory factor derived
	// from seniority. Companies with uniform benefit schemes pin it.
	IntegrationFactor *decimal.Decimal `yaml:"factor_integracion,omitempty" json:"factor_integracion,omitempty"`

	AguinaldoDays       decimal.Decimal `yaml:"dias_aguinaldo" json:"dias_aguinaldo"`
	VacationPremiumRate decimal.Decimal `yaml:"prima_vacacional" json:"prima_vacacional"`

	// BorderZone marks employers in the Zona Libre de la Frontera Norte,
	// where the higher border minimum wage applies.
	BorderZone bool `yaml:"zona_fronteriza,omitempty" json:"zona_fronteriza,omitempty"`

	// AbsorbEmployeeQuota opts in to paying the employee-side IMSS quotas
	// for minimum-wage workers (article 36 LSS).
	AbsorbEmployeeQuota bool `yaml:"absorbe_cuota_obrera,omitempty" json:"absorbe_cuota_obrera,omitempty"`

	// DaysPerMonth is the payroll convention used to monthlyize daily
	// amounts: 30 or 30.4 (365/12).
	DaysPerMonth decimal.Decimal `yaml:"dias_por_mes" json:"dias_por_mes"`
}

// ApplyDefaults fills unset policy fields with the legal minimums and the
// common 30.4 days-per-month convention.
func (c *CompanyConfig) ApplyDefaults() {
	if c.DaysPerMonth.IsZero() {
		c.DaysPerMonth = decimal.NewFromFloat(30.4)
	}
	if c.AguinaldoDays.IsZero() {
		c.AguinaldoDays = decimal.NewFromInt(15)
	}
	if c.VacationPremiumRate.IsZero() {
		c.VacationPremiumRate = decimal.NewFromFloat(0.25)
	}
}

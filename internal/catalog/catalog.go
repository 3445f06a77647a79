// Package catalog holds the statutory rates, brackets and wage floors that
// drive every calculation: UMA, minimum wages, the IMSS quota rates, the
// monthly ISR tariff, the employment subsidy, INFONAVIT, per-state ISN rates
// and the seniority vacation table.
//
// A Catalog is loaded once (built-in year or YAML file), validated, and then
// passed by pointer into the calculators. It is never mutated after that.
package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/domain"
)

// ISRBracket is one row of the monthly ISR withholding tariff. The last row
// of a tariff is open-ended: Upper is zero and any income at or above Lower
// falls into it.
type ISRBracket struct {
	Lower      decimal.Decimal `yaml:"limite_inferior" json:"limite_inferior"`
	Upper      decimal.Decimal `yaml:"limite_superior" json:"limite_superior"`
	FixedQuota decimal.Decimal `yaml:"cuota_fija" json:"cuota_fija"`
	Rate       decimal.Decimal `yaml:"tasa" json:"tasa"`
}

// IMSSRates carries the fixed quota rates of the Ley del Seguro Social. The
// risk premium is not here: it is assigned per company and validated against
// the Min/Max bounds.
type IMSSRates struct {
	EmployerCuotaFija            decimal.Decimal `yaml:"patron_cuota_fija" json:"patron_cuota_fija"`
	EmployerExcedente            decimal.Decimal `yaml:"patron_excedente" json:"patron_excedente"`
	EmployerPrestacionesEnDinero decimal.Decimal `yaml:"patron_prestaciones_en_dinero" json:"patron_prestaciones_en_dinero"`
	EmployerGastosMedicos        decimal.Decimal `yaml:"patron_gastos_medicos" json:"patron_gastos_medicos"`
	EmployerInvalidezVida        decimal.Decimal `yaml:"patron_invalidez_vida" json:"patron_invalidez_vida"`
	EmployerGuarderias           decimal.Decimal `yaml:"patron_guarderias" json:"patron_guarderias"`
	EmployerRetiro               decimal.Decimal `yaml:"patron_retiro" json:"patron_retiro"`
	EmployerCesantiaVejez        decimal.Decimal `yaml:"patron_cesantia_vejez" json:"patron_cesantia_vejez"`

	EmployeeExcedente            decimal.Decimal `yaml:"obrero_excedente" json:"obrero_excedente"`
	EmployeePrestacionesEnDinero decimal.Decimal `yaml:"obrero_prestaciones_en_dinero" json:"obrero_prestaciones_en_dinero"`
	EmployeeGastosMedicos        decimal.Decimal `yaml:"obrero_gastos_medicos" json:"obrero_gastos_medicos"`
	EmployeeInvalidezVida        decimal.Decimal `yaml:"obrero_invalidez_vida" json:"obrero_invalidez_vida"`
	EmployeeCesantiaVejez        decimal.Decimal `yaml:"obrero_cesantia_vejez" json:"obrero_cesantia_vejez"`

	RiskPremiumMin decimal.Decimal `yaml:"prima_riesgo_minima" json:"prima_riesgo_minima"`
	RiskPremiumMax decimal.Decimal `yaml:"prima_riesgo_maxima" json:"prima_riesgo_maxima"`
}

// Catalog is the complete set of statutory parameters for one fiscal year.
type Catalog struct {
	Year int             `yaml:"anio" json:"anio"`
	UMA  decimal.Decimal `yaml:"uma" json:"uma"`

	MinimumWageGeneral decimal.Decimal `yaml:"salario_minimo_general" json:"salario_minimo_general"`
	MinimumWageBorder  decimal.Decimal `yaml:"salario_minimo_frontera" json:"salario_minimo_frontera"`

	// MinimumWageTolerance is the fraction around the minimum wage within
	// which a salary is treated as minimum wage (covers rounding in
	// upstream payroll systems).
	MinimumWageTolerance decimal.Decimal `yaml:"tolerancia_salario_minimo" json:"tolerancia_salario_minimo"`

	// SBCCapUMA is the contribution base ceiling expressed in UMAs (25).
	SBCCapUMA decimal.Decimal `yaml:"tope_sbc_umas" json:"tope_sbc_umas"`

	IMSS          IMSSRates       `yaml:"imss" json:"imss"`
	InfonavitRate decimal.Decimal `yaml:"tasa_infonavit" json:"tasa_infonavit"`

	ISRBrackets      []ISRBracket    `yaml:"tarifa_isr" json:"tarifa_isr"`
	SubsidyThreshold decimal.Decimal `yaml:"subsidio_limite_ingreso" json:"subsidio_limite_ingreso"`
	SubsidyAmount    decimal.Decimal `yaml:"subsidio_mensual" json:"subsidio_mensual"`

	ISNRates map[string]decimal.Decimal `yaml:"tasas_isn" json:"tasas_isn"`

	// VacationTable maps completed years of service (index+1) to statutory
	// vacation days. Seniority past the table keeps the last entry and adds
	// two days per additional five-year block.
	VacationTable []int `yaml:"tabla_vacaciones" json:"tabla_vacaciones"`

	// Legal minimums used for the statutory integration factor, independent
	// of any richer company policy.
	LegalMinAguinaldoDays   decimal.Decimal `yaml:"dias_aguinaldo_minimos" json:"dias_aguinaldo_minimos"`
	LegalMinVacationPremium decimal.Decimal `yaml:"prima_vacacional_minima" json:"prima_vacacional_minima"`

	// NetTolerance is the default convergence tolerance, in pesos, for the
	// net-to-gross solver.
	NetTolerance decimal.Decimal `yaml:"tolerancia_neto" json:"tolerancia_neto"`
}

// ID labels the catalog in error messages.
func (c *Catalog) ID() string {
	return strconv.Itoa(c.Year)
}

// MinimumWage returns the applicable daily wage floor for the zone.
func (c *Catalog) MinimumWage(borderZone bool) decimal.Decimal {
	if borderZone {
		return c.MinimumWageBorder
	}
	return c.MinimumWageGeneral
}

// SBCCap returns the daily contribution base ceiling (25 UMA).
func (c *Catalog) SBCCap() decimal.Decimal {
	return c.UMA.Mul(c.SBCCapUMA)
}

// VacationDays returns the statutory vacation days for the given completed
// years of service: the table value within the table, and past it the last
// table value plus two days per additional five-year block.
func (c *Catalog) VacationDays(seniorityYears int) int {
	if seniorityYears < 1 || len(c.VacationTable) == 0 {
		return 0
	}
	if seniorityYears <= len(c.VacationTable) {
		return c.VacationTable[seniorityYears-1]
	}
	past := seniorityYears - len(c.VacationTable)
	return c.VacationTable[len(c.VacationTable)-1] + 2*(past/5)
}

// StateRate looks up the ISN rate for a state. Keys are matched in
// lower-snake form ("nuevo_leon", "cdmx").
func (c *Catalog) StateRate(state string) (decimal.Decimal, bool) {
	rate, ok := c.ISNRates[NormalizeState(state)]
	return rate, ok
}

// NormalizeState lowers and snake-cases a state name for table lookup.
func NormalizeState(state string) string {
	s := strings.ToLower(strings.TrimSpace(state))
	return strings.ReplaceAll(s, " ", "_")
}

// Validate checks the catalog for defects that would poison every
// calculation. Any failure is a CatalogError: the deployment must not serve
// results from a broken catalog.
func (c *Catalog) Validate() error {
	if !c.UMA.IsPositive() {
		return domain.NewCatalogError(c.ID(), "la UMA debe ser positiva")
	}
	if !c.MinimumWageGeneral.IsPositive() || !c.MinimumWageBorder.IsPositive() {
		return domain.NewCatalogError(c.ID(), "los salarios minimos deben ser positivos")
	}
	if c.MinimumWageBorder.LessThan(c.MinimumWageGeneral) {
		return domain.NewCatalogError(c.ID(), "el salario minimo fronterizo no puede ser menor al general")
	}
	if !c.SBCCapUMA.IsPositive() {
		return domain.NewCatalogError(c.ID(), "el tope de SBC en UMAs debe ser positivo")
	}
	if c.MinimumWageTolerance.IsNegative() {
		return domain.NewCatalogError(c.ID(), "la tolerancia de salario minimo no puede ser negativa")
	}
	if err := c.validateISR(); err != nil {
		return err
	}
	if err := c.validateRates(); err != nil {
		return err
	}
	if len(c.VacationTable) == 0 {
		return domain.NewCatalogError(c.ID(), "la tabla de vacaciones esta vacia")
	}
	prev := 0
	for i, days := range c.VacationTable {
		if days < prev {
			return domain.NewCatalogError(c.ID(), "la tabla de vacaciones decrece en el anio %d", i+1)
		}
		prev = days
	}
	if len(c.ISNRates) == 0 {
		return domain.NewCatalogError(c.ID(), "no hay tasas de ISN configuradas")
	}
	return nil
}

func (c *Catalog) validateISR() error {
	if len(c.ISRBrackets) == 0 {
		return domain.NewCatalogError(c.ID(), "la tarifa de ISR esta vacia")
	}
	for i, b := range c.ISRBrackets {
		if b.Lower.IsNegative() || b.Rate.IsNegative() || b.FixedQuota.IsNegative() {
			return domain.NewCatalogError(c.ID(), "tarifa de ISR con valores negativos en el renglon %d", i+1)
		}
		last := i == len(c.ISRBrackets)-1
		if last {
			if !b.Upper.IsZero() {
				return domain.NewCatalogError(c.ID(), "el ultimo renglon de la tarifa de ISR debe ser abierto")
			}
			continue
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return domain.NewCatalogError(c.ID(), "tarifa de ISR no creciente en el renglon %d", i+1)
		}
		next := c.ISRBrackets[i+1]
		if !next.Lower.GreaterThan(b.Upper) {
			return domain.NewCatalogError(c.ID(), "tarifa de ISR con renglones traslapados en el %d", i+2)
		}
	}
	return nil
}

func (c *Catalog) validateRates() error {
	one := decimal.NewFromInt(1)
	fractions := []struct {
		name string
		rate decimal.Decimal
	}{
		{"patron_cuota_fija", c.IMSS.EmployerCuotaFija},
		{"patron_excedente", c.IMSS.EmployerExcedente},
		{"patron_prestaciones_en_dinero", c.IMSS.EmployerPrestacionesEnDinero},
		{"patron_gastos_medicos", c.IMSS.EmployerGastosMedicos},
		{"patron_invalidez_vida", c.IMSS.EmployerInvalidezVida},
		{"patron_guarderias", c.IMSS.EmployerGuarderias},
		{"patron_retiro", c.IMSS.EmployerRetiro},
		{"patron_cesantia_vejez", c.IMSS.EmployerCesantiaVejez},
		{"obrero_excedente", c.IMSS.EmployeeExcedente},
		{"obrero_prestaciones_en_dinero", c.IMSS.EmployeePrestacionesEnDinero},
		{"obrero_gastos_medicos", c.IMSS.EmployeeGastosMedicos},
		{"obrero_invalidez_vida", c.IMSS.EmployeeInvalidezVida},
		{"obrero_cesantia_vejez", c.IMSS.EmployeeCesantiaVejez},
		{"tasa_infonavit", c.InfonavitRate},
	}
	for _, f := range fractions {
		if f.rate.IsNegative() || f.rate.GreaterThanOrEqual(one) {
			return domain.NewCatalogError(c.ID(), "la tasa %s debe estar en [0, 1)", f.name)
		}
	}
	if c.IMSS.RiskPremiumMin.IsNegative() || c.IMSS.RiskPremiumMax.LessThanOrEqual(c.IMSS.RiskPremiumMin) {
		return domain.NewCatalogError(c.ID(), "los limites de prima de riesgo son invalidos")
	}
	for state, rate := range c.ISNRates {
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			return domain.NewCatalogError(c.ID(), "la tasa de ISN de %s debe estar en [0, 1)", state)
		}
	}
	return nil
}

// ValidateCompany checks a company configuration against the catalog bounds.
// Out-of-range values are rejected, never clamped.
func (c *Catalog) ValidateCompany(co *domain.CompanyConfig) error {
	if co.RiskPremium.LessThan(c.IMSS.RiskPremiumMin) || co.RiskPremium.GreaterThan(c.IMSS.RiskPremiumMax) {
		return domain.NewValidationError("prima_riesgo",
			"debe estar entre %s y %s", c.IMSS.RiskPremiumMin.String(), c.IMSS.RiskPremiumMax.String())
	}
	if co.AguinaldoDays.LessThan(c.LegalMinAguinaldoDays) {
		return domain.NewValidationError("dias_aguinaldo",
			"no puede ser menor al minimo legal de %s dias", c.LegalMinAguinaldoDays.String())
	}
	if co.VacationPremiumRate.LessThan(c.LegalMinVacationPremium) {
		return domain.NewValidationError("prima_vacacional",
			"no puede ser menor al minimo legal de %s", c.LegalMinVacationPremium.String())
	}
	if !isKnownDaysPerMonth(co.DaysPerMonth) {
		return domain.NewValidationError("dias_por_mes", "debe ser 30 o 30.4")
	}
	if _, ok := c.StateRate(co.State); !ok {
		return domain.NewValidationError("estado", "estado desconocido: %q", co.State)
	}
	if co.IntegrationFactor != nil && co.IntegrationFactor.LessThan(decimal.NewFromInt(1)) {
		return domain.NewValidationError("factor_integracion", "no puede ser menor que 1")
	}
	return nil
}

func isKnownDaysPerMonth(d decimal.Decimal) bool {
	return d.Equal(decimal.NewFromInt(30)) || d.Equal(decimal.NewFromFloat(30.4))
}

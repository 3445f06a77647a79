package catalog

import (
	"github.com/shopspring/decimal"
)

// Mexico2026 returns the catalog in force for fiscal year 2026: the CONASAMI
// minimum wages and INEGI UMA published for 2026, the monthly ISR tariff of
// anexo 8 RMF (unchanged since 2025), the employment subsidy decree amounts,
// the LSS quota rates and the post-2023 LFT vacation table.
//
// ISN rates change by state legislature each year; deployments in states with
// a fresh rate override the table with a YAML catalog.
func Mexico2026() *Catalog {
	return &Catalog{
		Year: 2026,
		UMA:  decimal.NewFromFloat(117.19),

		MinimumWageGeneral:   decimal.NewFromFloat(315.04),
		MinimumWageBorder:    decimal.NewFromFloat(440.87),
		MinimumWageTolerance: decimal.NewFromFloat(0.01),

		SBCCapUMA: decimal.NewFromInt(25),

		IMSS: IMSSRates{
			EmployerCuotaFija:            decimal.NewFromFloat(0.2040),
			EmployerExcedente:            decimal.NewFromFloat(0.0110),
			EmployerPrestacionesEnDinero: decimal.NewFromFloat(0.0070),
			EmployerGastosMedicos:        decimal.NewFromFloat(0.0105),
			EmployerInvalidezVida:        decimal.NewFromFloat(0.0175),
			EmployerGuarderias:           decimal.NewFromFloat(0.0100),
			EmployerRetiro:               decimal.NewFromFloat(0.0200),
			EmployerCesantiaVejez:        decimal.NewFromFloat(0.03150),

			EmployeeExcedente:            decimal.NewFromFloat(0.0040),
			EmployeePrestacionesEnDinero: decimal.NewFromFloat(0.0025),
			EmployeeGastosMedicos:        decimal.NewFromFloat(0.00375),
			EmployeeInvalidezVida:        decimal.NewFromFloat(0.00625),
			EmployeeCesantiaVejez:        decimal.NewFromFloat(0.01125),

			RiskPremiumMin: decimal.NewFromFloat(0.005),
			RiskPremiumMax: decimal.NewFromFloat(0.15),
		},
		InfonavitRate: decimal.NewFromFloat(0.05),

		ISRBrackets: []ISRBracket{
			{decimal.NewFromFloat(0.01), decimal.NewFromFloat(844.58), decimal.Zero, decimal.NewFromFloat(0.0192)},
			{decimal.NewFromFloat(844.59), decimal.NewFromFloat(7168.50), decimal.NewFromFloat(16.21), decimal.NewFromFloat(0.0640)},
			{decimal.NewFromFloat(7168.51), decimal.NewFromFloat(12598.02), decimal.NewFromFloat(420.95), decimal.NewFromFloat(0.1088)},
			{decimal.NewFromFloat(12598.03), decimal.NewFromFloat(14644.64), decimal.NewFromFloat(1011.68), decimal.NewFromFloat(0.1600)},
			{decimal.NewFromFloat(14644.65), decimal.NewFromFloat(17533.64), decimal.NewFromFloat(1339.14), decimal.NewFromFloat(0.1792)},
			{decimal.NewFromFloat(17533.65), decimal.NewFromFloat(35364.18), decimal.NewFromFloat(1856.92), decimal.NewFromFloat(0.2136)},
			{decimal.NewFromFloat(35364.19), decimal.NewFromFloat(55743.70), decimal.NewFromFloat(5665.59), decimal.NewFromFloat(0.2352)},
			{decimal.NewFromFloat(55743.71), decimal.NewFromFloat(106441.55), decimal.NewFromFloat(10458.85), decimal.NewFromFloat(0.3000)},
			{decimal.NewFromFloat(106441.56), decimal.NewFromFloat(141922.05), decimal.NewFromFloat(25668.19), decimal.NewFromFloat(0.3200)},
			{decimal.NewFromFloat(141922.06), decimal.NewFromFloat(425766.15), decimal.NewFromFloat(37021.94), decimal.NewFromFloat(0.3400)},
			{decimal.NewFromFloat(425766.16), decimal.Zero, decimal.NewFromFloat(133528.93), decimal.NewFromFloat(0.3500)},
		},
		SubsidyThreshold: decimal.NewFromFloat(10171.00),
		SubsidyAmount:    decimal.NewFromFloat(475.00),

		ISNRates: map[string]decimal.Decimal{
			"aguascalientes":      decimal.NewFromFloat(0.025),
			"baja_california":     decimal.NewFromFloat(0.018),
			"baja_california_sur": decimal.NewFromFloat(0.025),
			"campeche":            decimal.NewFromFloat(0.030),
			"cdmx":                decimal.NewFromFloat(0.030),
			"chiapas":             decimal.NewFromFloat(0.020),
			"chihuahua":           decimal.NewFromFloat(0.030),
			"coahuila":            decimal.NewFromFloat(0.020),
			"colima":              decimal.NewFromFloat(0.020),
			"durango":             decimal.NewFromFloat(0.020),
			"estado_de_mexico":    decimal.NewFromFloat(0.030),
			"guanajuato":          decimal.NewFromFloat(0.023),
			"guerrero":            decimal.NewFromFloat(0.020),
			"hidalgo":             decimal.NewFromFloat(0.030),
			"jalisco":             decimal.NewFromFloat(0.020),
			"michoacan":           decimal.NewFromFloat(0.030),
			"morelos":             decimal.NewFromFloat(0.020),
			"nayarit":             decimal.NewFromFloat(0.030),
			"nuevo_leon":          decimal.NewFromFloat(0.030),
			"oaxaca":              decimal.NewFromFloat(0.030),
			"puebla":              decimal.NewFromFloat(0.030),
			"queretaro":           decimal.NewFromFloat(0.020),
			"quintana_roo":        decimal.NewFromFloat(0.030),
			"san_luis_potosi":     decimal.NewFromFloat(0.030),
			"sinaloa":             decimal.NewFromFloat(0.024),
			"sonora":              decimal.NewFromFloat(0.020),
			"tabasco":             decimal.NewFromFloat(0.025),
			"tamaulipas":          decimal.NewFromFloat(0.030),
			"tlaxcala":            decimal.NewFromFloat(0.030),
			"veracruz":            decimal.NewFromFloat(0.030),
			"yucatan":             decimal.NewFromFloat(0.030),
			"zacatecas":           decimal.NewFromFloat(0.030),
		},

		VacationTable: []int{
			12, 14, 16, 18, 20,
			22, 22, 22, 22, 22,
			24, 24, 24, 24, 24,
			26, 26, 26, 26, 26,
			28, 28, 28, 28, 28,
			30, 30, 30, 30, 30,
		},

		LegalMinAguinaldoDays:   decimal.NewFromInt(15),
		LegalMinVacationPremium: decimal.NewFromFloat(0.25),

		NetTolerance: decimal.NewFromFloat(0.01),
	}
}

// Current returns the built-in catalog for the year the binary targets.
func Current() *Catalog {
	return Mexico2026()
}

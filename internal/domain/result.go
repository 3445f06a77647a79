package domain

import (
	"github.com/shopspring/decimal"
)

// IMSSEmployerDetail breaks the employer IMSS contribution into the nine
// statutory line items. Every amount is for the calculated period and already
// rounded to centavos.
type IMSSEmployerDetail struct {
	CuotaFija            decimal.Decimal `json:"cuota_fija"`
	Excedente            decimal.Decimal `json:"excedente_3uma"`
	PrestacionesEnDinero decimal.Decimal `json:"prestaciones_en_dinero"`
	GastosMedicos        decimal.Decimal `json:"gastos_medicos_pensionados"`
	RiesgoTrabajo        decimal.Decimal `json:"riesgo_trabajo"`
	InvalidezVida        decimal.Decimal `json:"invalidez_vida"`
	Guarderias           decimal.Decimal `json:"guarderias"`
	Retiro               decimal.Decimal `json:"retiro"`
	CesantiaVejez        decimal.Decimal `json:"cesantia_vejez"`
	Total                decimal.Decimal `json:"total"`
}

// IMSSEmployeeDetail breaks the employee-side IMSS withholding into its five
// line items. All items are zero when the employer absorbs the quota for a
// minimum-wage worker.
type IMSSEmployeeDetail struct {
	Excedente            decimal.Decimal `json:"excedente_3uma"`
	PrestacionesEnDinero decimal.Decimal `json:"prestaciones_en_dinero"`
	GastosMedicos        decimal.Decimal `json:"gastos_medicos"`
	InvalidezVida        decimal.Decimal `json:"invalidez_vida"`
	CesantiaVejez        decimal.Decimal `json:"cesantia_vejez"`
	Total                decimal.Decimal `json:"total"`
}

// ProvisionsDetail holds the monthly accruals for annual benefits.
type ProvisionsDetail struct {
	Aguinaldo       decimal.Decimal `json:"aguinaldo"`
	Vacaciones      decimal.Decimal `json:"vacaciones"`
	PrimaVacacional decimal.Decimal `json:"prima_vacacional"`
	Total           decimal.Decimal `json:"total"`
}

// ISRDetail holds the monthly income tax withholding computation.
type ISRDetail struct {
	Taxable       decimal.Decimal `json:"base_gravable"`
	BeforeSubsidy decimal.Decimal `json:"isr_antes_subsidio"`
	Subsidy       decimal.Decimal `json:"subsidio_al_empleo"`
	ToWithhold    decimal.Decimal `json:"isr_a_retener"`
}

// CalculationResult is the complete employer-cost snapshot for one worker and
// one period. Every value is copied in at calculation time; the struct shares
// no state with the engine or the catalog and is safe to hand across
// goroutines, serialize, or export as-is.
type CalculationResult struct {
	WorkerName     string          `json:"trabajador"`
	DailySalary    decimal.Decimal `json:"salario_diario"`
	SeniorityYears int             `json:"antiguedad_anios"`
	DaysWorked     decimal.Decimal `json:"dias_trabajados"`

	IsMinimumWage     bool            `json:"es_salario_minimo"`
	IntegrationFactor decimal.Decimal `json:"factor_integracion"`
	SBCDaily          decimal.Decimal `json:"sbc_diario"`
	SBCMonthly        decimal.Decimal `json:"sbc_mensual"`
	NominalMonthly    decimal.Decimal `json:"salario_mensual"`

	IMSSEmployer IMSSEmployerDetail `json:"imss_patronal"`
	IMSSEmployee IMSSEmployeeDetail `json:"imss_obrero"`

	// AbsorbedEmployeeQuota is the employee-side IMSS total the employer
	// took on under article 36 LSS. Zero unless the worker earns minimum
	// wage and the company opted in.
	AbsorbedEmployeeQuota decimal.Decimal `json:"cuota_obrera_absorbida"`

	Infonavit decimal.Decimal `json:"infonavit"`
	ISN       decimal.Decimal `json:"isn"`

	Provisions ProvisionsDetail `json:"provisiones"`
	ISR        ISRDetail        `json:"isr"`

	// TotalEmployerBurden is everything the employer pays on top of salary:
	// IMSS employer total, INFONAVIT, ISN and any absorbed employee quota.
	TotalEmployerBurden decimal.Decimal `json:"carga_patronal"`

	// TotalCost = nominal monthly salary + employer burden + provisions.
	TotalCost decimal.Decimal `json:"costo_total_mensual"`

	// CostFactor = TotalCost / NominalMonthly, rounded to four places.
	CostFactor decimal.Decimal `json:"factor_costo"`

	// NetSalary is what the worker takes home after IMSS and ISR
	// withholdings.
	NetSalary decimal.Decimal `json:"salario_neto"`
}

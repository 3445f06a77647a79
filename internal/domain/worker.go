package domain

import (
	"github.com/shopspring/decimal"
)

// Worker describes one employee on the payroll for a single monthly period.
type Worker struct {
	Name           string          `yaml:"nombre" json:"nombre"`
	DailySalary    decimal.Decimal `yaml:"salario_diario" json:"salario_diario"`
	SeniorityYears int             `yaml:"antiguedad_anios" json:"antiguedad_anios"`

	// DaysWorked is the number of days contributed in the period. Zero means
	// a full month (the company's days-per-month convention applies).
	DaysWorked decimal.Decimal `yaml:"dias_trabajados,omitempty" json:"dias_trabajados,omitempty"`

	// ExtraVacationDays are contractual vacation days granted above the
	// statutory seniority table.
	ExtraVacationDays int `yaml:"dias_vacaciones_extra,omitempty" json:"dias_vacaciones_extra,omitempty"`
}

// MonthlySalary returns the nominal gross salary for a full month under the
// given days-per-month convention.
func (w *Worker) MonthlySalary(daysPerMonth decimal.Decimal) decimal.Decimal {
	return w.DailySalary.Mul(daysPerMonth)
}

// Package tui is an interactive terminal calculator: edit the worker and
// company parameters on the left, watch the employer cost refresh on the
// right with every valid keystroke.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// Focusable rows. The text inputs come first, then the two toggles.
const (
	fieldSalary = iota
	fieldSeniority
	fieldDaysWorked
	fieldExtraVacation
	fieldRiskPremium
	fieldState
	fieldCount
)

const (
	toggleBorderZone = fieldCount + iota
	toggleAbsorbQuota
	rowCount
)

var fieldLabels = [fieldCount]string{
	"Salario diario",
	"Antiguedad (anios)",
	"Dias trabajados",
	"Dias de vacaciones extra",
	"Prima de riesgo",
	"Estado",
}

// Model holds the form state and the last successful calculation.
type Model struct {
	inputs  []textinput.Model
	focused int

	borderZone  bool
	absorbQuota bool

	catalog *catalog.Catalog
	engine  *calculation.CostEngine

	result   *domain.CalculationResult
	fieldErr string

	width  int
	height int
}

// NewModel builds the calculator against the given catalog with a sensible
// starting worker already calculated.
func NewModel(cat *catalog.Catalog) (Model, error) {
	engine, err := calculation.NewCostEngine(cat)
	if err != nil {
		return Model{}, err
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 24
		ti.Width = 20
		inputs[i] = ti
	}
	inputs[fieldSalary].SetValue("500")
	inputs[fieldSeniority].SetValue("1")
	inputs[fieldDaysWorked].Placeholder = "vacio = mes completo"
	inputs[fieldExtraVacation].SetValue("0")
	inputs[fieldRiskPremium].SetValue("0.005")
	inputs[fieldState].SetValue("ciudad_de_mexico")
	inputs[fieldState].CharLimit = 32
	inputs[fieldState].Width = 24
	inputs[fieldSalary].Focus()

	m := Model{
		inputs:  inputs,
		catalog: cat,
		engine:  engine,
		width:   100,
		height:  32,
	}
	m.recalc()
	return m, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// recalc rebuilds the scenario from the form and runs the engine. On a parse
// or validation error the previous result stays on screen and the error goes
// to the footer.
func (m *Model) recalc() {
	company, worker, err := m.buildScenario()
	if err != nil {
		m.fieldErr = err.Error()
		return
	}
	result, err := m.engine.Calculate(company, worker)
	if err != nil {
		m.fieldErr = err.Error()
		return
	}
	m.fieldErr = ""
	m.result = result
}

func (m *Model) buildScenario() (*domain.CompanyConfig, *domain.Worker, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldSalary].Value()))
	if err != nil || !salary.IsPositive() {
		return nil, nil, fmt.Errorf("salario diario invalido")
	}

	seniority := 0
	if v := strings.TrimSpace(m.inputs[fieldSeniority].Value()); v != "" {
		seniority, err = strconv.Atoi(v)
		if err != nil || seniority < 0 {
			return nil, nil, fmt.Errorf("antiguedad invalida")
		}
	}

	daysWorked := decimal.Zero
	if v := strings.TrimSpace(m.inputs[fieldDaysWorked].Value()); v != "" {
		daysWorked, err = decimal.NewFromString(v)
		if err != nil || daysWorked.IsNegative() {
			return nil, nil, fmt.Errorf("dias trabajados invalidos")
		}
	}

	extra := 0
	if v := strings.TrimSpace(m.inputs[fieldExtraVacation].Value()); v != "" {
		extra, err = strconv.Atoi(v)
		if err != nil || extra < 0 {
			return nil, nil, fmt.Errorf("dias de vacaciones extra invalidos")
		}
	}

	premium, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldRiskPremium].Value()))
	if err != nil || premium.IsNegative() {
		return nil, nil, fmt.Errorf("prima de riesgo invalida")
	}

	state := strings.ToLower(strings.TrimSpace(m.inputs[fieldState].Value()))
	if state == "" {
		return nil, nil, fmt.Errorf("estado requerido")
	}

	company := &domain.CompanyConfig{
		Name:                "empresa",
		State:               state,
		RiskPremium:         premium,
		BorderZone:          m.borderZone,
		AbsorbEmployeeQuota: m.absorbQuota,
	}
	company.ApplyDefaults()

	worker := &domain.Worker{
		Name:              "trabajador",
		DailySalary:       salary,
		SeniorityYears:    seniority,
		DaysWorked:        daysWorked,
		ExtraVacationDays: extra,
	}
	return company, worker, nil
}

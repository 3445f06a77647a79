package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/output"
)

// View renders the form on the left and the live result on the right.
func (m Model) View() string {
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("cpgo - costo patronal en vivo"),
		SubtitleStyle.Render(fmt.Sprintf("catalogo %d | UMA diaria %s",
			m.catalog.Year, output.FormatCurrency(m.catalog.UMA))),
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderForm(),
		"  ",
		m.renderResults(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", m.renderFooter()) + "\n"
}

func (m Model) renderForm() string {
	rows := make([]string, 0, rowCount)
	for i := 0; i < fieldCount; i++ {
		label := LabelStyle
		if m.focused == i {
			label = FocusedLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			label.Render(fieldLabels[i]),
			m.inputs[i].View(),
		))
	}
	rows = append(rows, "")
	rows = append(rows, m.renderToggle(toggleBorderZone, "Zona fronteriza", m.borderZone))
	rows = append(rows, m.renderToggle(toggleAbsorbQuota, "Patron absorbe cuota obrera", m.absorbQuota))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderToggle(row int, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	style := ToggleStyle
	if m.focused == row {
		style = FocusedToggleStyle
	}
	return style.Render(box + " " + label)
}

func (m Model) renderResults() string {
	if m.result == nil {
		return PanelStyle.Render("sin resultado")
	}
	r := m.result

	employer := []string{
		PanelTitleStyle.Render("Patron"),
		metric("Cuota fija", r.IMSSEmployer.CuotaFija),
		metric("Excedente 3 UMA", r.IMSSEmployer.Excedente),
		metric("Prestaciones en dinero", r.IMSSEmployer.PrestacionesEnDinero),
		metric("Gastos medicos", r.IMSSEmployer.GastosMedicos),
		metric("Riesgo de trabajo", r.IMSSEmployer.RiesgoTrabajo),
		metric("Invalidez y vida", r.IMSSEmployer.InvalidezVida),
		metric("Guarderias", r.IMSSEmployer.Guarderias),
		metric("Retiro", r.IMSSEmployer.Retiro),
		metric("Cesantia y vejez", r.IMSSEmployer.CesantiaVejez),
		metricTotal("IMSS patronal", r.IMSSEmployer.Total),
		metric("INFONAVIT", r.Infonavit),
		metric("ISN", r.ISN),
	}
	if r.AbsorbedEmployeeQuota.IsPositive() {
		employer = append(employer, metric("Cuota obrera absorbida", r.AbsorbedEmployeeQuota))
	}

	worker := []string{
		PanelTitleStyle.Render("Trabajador"),
		metric("Salario mensual", r.NominalMonthly),
		metric("SBC diario", r.SBCDaily),
		metric("IMSS obrero", r.IMSSEmployee.Total),
		metric("ISR retenido", r.ISR.ToWithhold),
		metricTotal("Salario neto", r.NetSalary),
	}
	if r.IsMinimumWage {
		worker = append(worker, SubtitleStyle.Render("salario minimo"))
	}

	totals := []string{
		PanelTitleStyle.Render("Provisiones y totales"),
		metric("Aguinaldo", r.Provisions.Aguinaldo),
		metric("Vacaciones", r.Provisions.Vacaciones),
		metric("Prima vacacional", r.Provisions.PrimaVacacional),
		metric("Carga patronal", r.TotalEmployerBurden),
		metricTotal("Costo total mensual", r.TotalCost),
		MetricLabelStyle.Render("Factor de costo") +
			TotalStyle.Render(fmt.Sprintf("%12s", r.CostFactor.StringFixed(4))),
	}

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, employer...)),
		PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, worker...)),
	)
	bottom := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, totals...))

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderFooter() string {
	shortcuts := []string{
		formatShortcut("tab", "campo"),
		formatShortcut("espacio", "alternar"),
		formatShortcut("esc", "salir"),
	}
	help := StatusBarStyle.Render(strings.Join(shortcuts, " • "))

	if m.fieldErr != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			ErrorStyle.Render("error: "+m.fieldErr),
			help,
		)
	}
	return help
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func metric(label string, amount decimal.Decimal) string {
	return MetricLabelStyle.Render(label) +
		ValueStyle.Render(fmt.Sprintf("%12s", output.FormatCurrency(amount)))
}

func metricTotal(label string, amount decimal.Decimal) string {
	return MetricLabelStyle.Render(label) +
		TotalStyle.Render(fmt.Sprintf("%12s", output.FormatCurrency(amount)))
}

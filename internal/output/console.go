package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/domain"
)

// ConsoleFormatter renders results as a plain-text breakdown for terminals.
type ConsoleFormatter struct{}

// Name returns the formatter name
func (c ConsoleFormatter) Name() string {
	return "console"
}

// Format renders one breakdown block per worker followed by a roster summary.
func (c ConsoleFormatter) Format(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "COSTO PATRONAL - %s (catalogo %d)\n", rs.Company.Name, rs.CatalogYear)
	fmt.Fprintf(&buf, "%s\n", strings.Repeat("=", 64))

	for i, item := range rs.Items {
		fmt.Fprintf(&buf, "\nTRABAJADOR %d: %s\n", i+1, item.Worker.Name)
		fmt.Fprintf(&buf, "%s\n", strings.Repeat("-", 64))
		if item.Err != nil {
			fmt.Fprintf(&buf, "  ERROR: %v\n", item.Err)
			continue
		}
		writeResult(&buf, item.Result, rs.Company.State)
	}

	writeRosterSummary(&buf, rs)
	return buf.Bytes(), nil
}

func writeResult(buf *bytes.Buffer, r *domain.CalculationResult, state string) {
	fmt.Fprintf(buf, "  Salario diario:          %s\n", FormatCurrency(r.DailySalary))
	fmt.Fprintf(buf, "  Salario mensual:         %s\n", FormatCurrency(r.NominalMonthly))
	fmt.Fprintf(buf, "  SBC diario:              %s (factor %s)\n", FormatCurrency(r.SBCDaily), r.IntegrationFactor.String())
	if r.IsMinimumWage {
		fmt.Fprintf(buf, "  Salario minimo:          si\n")
	}

	fmt.Fprintf(buf, "\n  IMSS patronal:\n")
	fmt.Fprintf(buf, "    Cuota fija:            %s\n", FormatCurrency(r.IMSSEmployer.CuotaFija))
	fmt.Fprintf(buf, "    Excedente 3 UMA:       %s\n", FormatCurrency(r.IMSSEmployer.Excedente))
	fmt.Fprintf(buf, "    Prestaciones dinero:   %s\n", FormatCurrency(r.IMSSEmployer.PrestacionesEnDinero))
	fmt.Fprintf(buf, "    Gastos medicos:        %s\n", FormatCurrency(r.IMSSEmployer.GastosMedicos))
	fmt.Fprintf(buf, "    Riesgo de trabajo:     %s\n", FormatCurrency(r.IMSSEmployer.RiesgoTrabajo))
	fmt.Fprintf(buf, "    Invalidez y vida:      %s\n", FormatCurrency(r.IMSSEmployer.InvalidezVida))
	fmt.Fprintf(buf, "    Guarderias:            %s\n", FormatCurrency(r.IMSSEmployer.Guarderias))
	fmt.Fprintf(buf, "    Retiro:                %s\n", FormatCurrency(r.IMSSEmployer.Retiro))
	fmt.Fprintf(buf, "    Cesantia y vejez:      %s\n", FormatCurrency(r.IMSSEmployer.CesantiaVejez))
	fmt.Fprintf(buf, "    Total IMSS patronal:   %s\n", FormatCurrency(r.IMSSEmployer.Total))

	fmt.Fprintf(buf, "\n  Retenciones del trabajador:\n")
	fmt.Fprintf(buf, "    IMSS obrero:           %s\n", FormatCurrency(r.IMSSEmployee.Total))
	if r.AbsorbedEmployeeQuota.IsPositive() {
		fmt.Fprintf(buf, "    Cuota absorbida:       %s\n", FormatCurrency(r.AbsorbedEmployeeQuota))
	}
	fmt.Fprintf(buf, "    ISR a retener:         %s\n", FormatCurrency(r.ISR.ToWithhold))
	if r.ISR.Subsidy.IsPositive() {
		fmt.Fprintf(buf, "    Subsidio al empleo:    %s\n", FormatCurrency(r.ISR.Subsidy))
	}

	fmt.Fprintf(buf, "\n  Otras cargas patronales:\n")
	fmt.Fprintf(buf, "    INFONAVIT:             %s\n", FormatCurrency(r.Infonavit))
	fmt.Fprintf(buf, "    ISN (%s):              %s\n", state, FormatCurrency(r.ISN))

	fmt.Fprintf(buf, "\n  Provisiones mensuales:\n")
	fmt.Fprintf(buf, "    Aguinaldo:             %s\n", FormatCurrency(r.Provisions.Aguinaldo))
	fmt.Fprintf(buf, "    Vacaciones:            %s\n", FormatCurrency(r.Provisions.Vacaciones))
	fmt.Fprintf(buf, "    Prima vacacional:      %s\n", FormatCurrency(r.Provisions.PrimaVacacional))
	fmt.Fprintf(buf, "    Total provisiones:     %s\n", FormatCurrency(r.Provisions.Total))

	fmt.Fprintf(buf, "\n  Carga patronal:          %s\n", FormatCurrency(r.TotalEmployerBurden))
	fmt.Fprintf(buf, "  COSTO TOTAL MENSUAL:     %s\n", FormatCurrency(r.TotalCost))
	fmt.Fprintf(buf, "  Factor de costo:         %s\n", r.CostFactor.String())
	fmt.Fprintf(buf, "  Salario neto:            %s\n", FormatCurrency(r.NetSalary))
}

func writeRosterSummary(buf *bytes.Buffer, rs *ResultSet) {
	ok, failed := 0, 0
	total := decimal.Zero
	for _, item := range rs.Items {
		if item.Err != nil {
			failed++
			continue
		}
		ok++
		total = total.Add(item.Result.TotalCost)
	}

	fmt.Fprintf(buf, "\n%s\n", strings.Repeat("=", 64))
	fmt.Fprintf(buf, "RESUMEN: %d trabajadores calculados", ok)
	if failed > 0 {
		fmt.Fprintf(buf, ", %d con error", failed)
	}
	fmt.Fprintf(buf, "\n")
	if ok > 0 {
		fmt.Fprintf(buf, "Costo total de nomina:     %s\n", FormatCurrency(total))
	}
	fmt.Fprintf(buf, "%s\n", strings.Repeat("=", 64))
}

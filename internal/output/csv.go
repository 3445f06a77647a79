package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter renders one row per worker for spreadsheet import.
type CSVFormatter struct{}

// Name returns the formatter name
func (c CSVFormatter) Name() string {
	return "csv"
}

// Format renders the result set as CSV with a header row. Failed items keep
// their row with the error message in the last column.
func (c CSVFormatter) Format(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"trabajador",
		"salario_diario",
		"salario_mensual",
		"sbc_diario",
		"es_salario_minimo",
		"imss_patronal",
		"imss_obrero",
		"cuota_absorbida",
		"isr",
		"infonavit",
		"isn",
		"provisiones",
		"carga_patronal",
		"costo_total",
		"factor_costo",
		"salario_neto",
		"error",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range rs.Items {
		if item.Err != nil {
			row := make([]string, len(header))
			row[0] = item.Worker.Name
			row[len(header)-1] = item.Err.Error()
			if err := w.Write(row); err != nil {
				return nil, err
			}
			continue
		}
		r := item.Result
		row := []string{
			r.WorkerName,
			r.DailySalary.StringFixed(2),
			r.NominalMonthly.StringFixed(2),
			r.SBCDaily.StringFixed(2),
			boolCell(r.IsMinimumWage),
			r.IMSSEmployer.Total.StringFixed(2),
			r.IMSSEmployee.Total.StringFixed(2),
			r.AbsorbedEmployeeQuota.StringFixed(2),
			r.ISR.ToWithhold.StringFixed(2),
			r.Infonavit.StringFixed(2),
			r.ISN.StringFixed(2),
			r.Provisions.Total.StringFixed(2),
			r.TotalEmployerBurden.StringFixed(2),
			r.TotalCost.StringFixed(2),
			r.CostFactor.StringFixed(4),
			r.NetSalary.StringFixed(2),
			"",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func boolCell(b bool) string {
	if b {
		return "si"
	}
	return "no"
}

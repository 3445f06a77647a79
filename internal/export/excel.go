// Package export writes calculation results as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/output"
)

const (
	costSheet  = "Costos"
	paramSheet = "Parametros"
)

var costHeader = []string{
	"Trabajador",
	"Salario diario",
	"Salario mensual",
	"SBC diario",
	"Salario minimo",
	"IMSS patronal",
	"IMSS obrero",
	"Cuota absorbida",
	"ISR",
	"INFONAVIT",
	"ISN",
	"Provisiones",
	"Carga patronal",
	"Costo total",
	"Factor de costo",
	"Salario neto",
	"Error",
}

// ExcelExporter renders a result set as a two-sheet workbook: one row per
// worker on "Costos" and the catalog and company parameters on "Parametros".
type ExcelExporter struct {
	Catalog *catalog.Catalog
}

// Name returns the exporter name
func (e ExcelExporter) Name() string {
	return "xlsx"
}

// Format builds the workbook and returns its bytes.
func (e ExcelExporter) Format(rs *output.ResultSet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeCosts(f, rs); err != nil {
		return nil, fmt.Errorf("hoja %s: %w", costSheet, err)
	}
	if err := e.writeParameters(f, rs); err != nil {
		return nil, fmt.Errorf("hoja %s: %w", paramSheet, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e ExcelExporter) writeCosts(f *excelize.File, rs *output.ResultSet) error {
	if err := f.SetSheetName("Sheet1", costSheet); err != nil {
		return err
	}

	for col, title := range costHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(costSheet, cell, title); err != nil {
			return err
		}
	}

	for i, item := range rs.Items {
		row := i + 2
		if item.Err != nil {
			if err := setCells(f, costSheet, row, item.Worker.Name, item.Err.Error()); err != nil {
				return err
			}
			continue
		}
		r := item.Result
		values := []interface{}{
			r.WorkerName,
			r.DailySalary.InexactFloat64(),
			r.NominalMonthly.InexactFloat64(),
			r.SBCDaily.InexactFloat64(),
			boolCell(r.IsMinimumWage),
			r.IMSSEmployer.Total.InexactFloat64(),
			r.IMSSEmployee.Total.InexactFloat64(),
			r.AbsorbedEmployeeQuota.InexactFloat64(),
			r.ISR.ToWithhold.InexactFloat64(),
			r.Infonavit.InexactFloat64(),
			r.ISN.InexactFloat64(),
			r.Provisions.Total.InexactFloat64(),
			r.TotalEmployerBurden.InexactFloat64(),
			r.TotalCost.InexactFloat64(),
			r.CostFactor.InexactFloat64(),
			r.NetSalary.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(costSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return e.styleMoneyColumns(f, len(rs.Items))
}

// setCells writes the worker name in column A and the error in the last
// column, leaving the numeric cells blank.
func setCells(f *excelize.File, sheet string, row int, name, errMsg string) error {
	nameCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, nameCell, name); err != nil {
		return err
	}
	errCell, err := excelize.CoordinatesToCellName(len(costHeader), row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, errCell, errMsg)
}

// styleMoneyColumns applies the builtin two-decimal format (NumFmt 2) to the
// money columns and a four-decimal format to the cost factor column.
func (e ExcelExporter) styleMoneyColumns(f *excelize.File, rows int) error {
	if rows == 0 {
		return nil
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	factorFmt := "0.0000"
	factor, err := f.NewStyle(&excelize.Style{CustomNumFmt: &factorFmt})
	if err != nil {
		return err
	}

	last := rows + 1
	ranges := []struct {
		fromCol, toCol, style int
	}{
		{2, 14, money},   // salario diario .. costo total
		{15, 15, factor}, // factor de costo
		{16, 16, money},  // salario neto
	}
	for _, rg := range ranges {
		top, err := excelize.CoordinatesToCellName(rg.fromCol, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(rg.toCol, last)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(costSheet, top, bottom, rg.style); err != nil {
			return err
		}
	}
	return nil
}

func (e ExcelExporter) writeParameters(f *excelize.File, rs *output.ResultSet) error {
	if _, err := f.NewSheet(paramSheet); err != nil {
		return err
	}

	cat := e.Catalog
	stateRate, _ := cat.StateRate(rs.Company.State)

	params := []struct {
		name  string
		value interface{}
	}{
		{"Catalogo", cat.Year},
		{"UMA diaria", cat.UMA.InexactFloat64()},
		{"Salario minimo general", cat.MinimumWageGeneral.InexactFloat64()},
		{"Salario minimo frontera", cat.MinimumWageBorder.InexactFloat64()},
		{"Tope SBC (25 UMA)", cat.SBCCap().InexactFloat64()},
		{"Tasa INFONAVIT", cat.InfonavitRate.InexactFloat64()},
		{"Tope subsidio al empleo", cat.SubsidyThreshold.InexactFloat64()},
		{"Subsidio al empleo", cat.SubsidyAmount.InexactFloat64()},
		{"Empresa", rs.Company.Name},
		{"Estado", rs.Company.State},
		{"Tasa ISN", stateRate.InexactFloat64()},
		{"Prima de riesgo", rs.Company.RiskPremium.InexactFloat64()},
		{"Dias por mes", rs.Company.DaysPerMonth.InexactFloat64()},
		{"Dias de aguinaldo", rs.Company.AguinaldoDays.InexactFloat64()},
		{"Prima vacacional", rs.Company.VacationPremiumRate.InexactFloat64()},
	}

	for i, p := range params {
		row := i + 1
		nameCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(paramSheet, nameCell, p.name); err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(paramSheet, valueCell, p.value); err != nil {
			return err
		}
	}
	return nil
}

func boolCell(b bool) string {
	if b {
		return "si"
	}
	return "no"
}

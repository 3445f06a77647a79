package output

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/domain"
)

func testResultSet(t *testing.T) *ResultSet {
	t.Helper()

	cat := catalog.Mexico2026()
	engine, err := calculation.NewCostEngine(cat)
	require.NoError(t, err)

	company := domain.CompanyConfig{
		Name:        "Operadora del Centro",
		State:       "jalisco",
		RiskPremium: decimal.NewFromFloat(0.005),
	}
	company.ApplyDefaults()

	roster := []domain.Worker{
		{Name: "Laura Gomez", DailySalary: decimal.NewFromFloat(500), SeniorityYears: 3},
		{Name: "Pedro Diaz", DailySalary: decimal.NewFromFloat(100), SeniorityYears: 1},
	}

	runner := calculation.NewBatchRunner(engine, 2)
	items := runner.Run(context.Background(), &company, roster)

	return &ResultSet{
		CatalogYear: cat.Year,
		Company:     company,
		Items:       items,
	}
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		f, err := GetFormatter(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	f, err := GetFormatter("")
	require.NoError(t, err)
	assert.Equal(t, "console", f.Name())

	_, err = GetFormatter("xml")
	assert.Error(t, err)
}

func TestConsoleFormat(t *testing.T) {
	rs := testResultSet(t)

	out, err := ConsoleFormatter{}.Format(rs)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "COSTO PATRONAL - Operadora del Centro (catalogo 2026)")
	assert.Contains(t, text, "TRABAJADOR 1: Laura Gomez")
	assert.Contains(t, text, "Salario mensual:         $15200.00")
	assert.Contains(t, text, "Cuota fija:")
	assert.Contains(t, text, "COSTO TOTAL MENSUAL:")
	assert.Contains(t, text, "ISN (jalisco)")

	// the sub-minimum worker keeps its slot with the error inline
	assert.Contains(t, text, "TRABAJADOR 2: Pedro Diaz")
	assert.Contains(t, text, "ERROR:")
	assert.Contains(t, text, "salario_diario")

	assert.Contains(t, text, "RESUMEN: 1 trabajadores calculados, 1 con error")
	assert.Contains(t, text, "Costo total de nomina:")
}

func TestJSONFormat(t *testing.T) {
	rs := testResultSet(t)

	out, err := JSONFormatter{}.Format(rs)
	require.NoError(t, err)

	var doc struct {
		Catalogo   int `json:"catalogo"`
		Empresa    struct {
			Nombre string `json:"nombre"`
			Estado string `json:"estado"`
		} `json:"empresa"`
		Resultados []struct {
			Trabajador string                    `json:"trabajador"`
			Resultado  *domain.CalculationResult `json:"resultado"`
			Error      string                    `json:"error"`
		} `json:"resultados"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, 2026, doc.Catalogo)
	assert.Equal(t, "Operadora del Centro", doc.Empresa.Nombre)
	assert.Equal(t, "jalisco", doc.Empresa.Estado)
	require.Len(t, doc.Resultados, 2)

	first := doc.Resultados[0]
	assert.Equal(t, "Laura Gomez", first.Trabajador)
	require.NotNil(t, first.Resultado)
	assert.Empty(t, first.Error)
	assert.True(t, decimal.NewFromFloat(15200).Equal(first.Resultado.NominalMonthly))

	second := doc.Resultados[1]
	assert.Equal(t, "Pedro Diaz", second.Trabajador)
	assert.Nil(t, second.Resultado)
	assert.Contains(t, second.Error, "salario_diario")
}

func TestCSVFormat(t *testing.T) {
	rs := testResultSet(t)

	out, err := CSVFormatter{}.Format(rs)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "trabajador", header[0])
	assert.Equal(t, "error", header[len(header)-1])

	first := records[1]
	assert.Equal(t, "Laura Gomez", first[0])
	assert.Equal(t, "500.00", first[1])
	assert.Equal(t, "15200.00", first[2])
	assert.Equal(t, "no", first[4])
	assert.Empty(t, first[len(first)-1])

	second := records[2]
	assert.Equal(t, "Pedro Diaz", second[0])
	assert.Empty(t, second[1])
	assert.Contains(t, second[len(second)-1], "salario_diario")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$9577.22", FormatCurrency(decimal.NewFromFloat(9577.22)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "5.00%", FormatPercentage(decimal.NewFromFloat(0.05)))
	assert.Equal(t, "1.10%", FormatPercentage(decimal.NewFromFloat(0.011)))
}

package output

import (
	json "github.com/goccy/go-json"

	"github.com/jcarrillo/cpgo/internal/domain"
)

// JSONFormatter renders results as an indented JSON document.
type JSONFormatter struct{}

// Name returns the formatter name
func (j JSONFormatter) Name() string {
	return "json"
}

type jsonItem struct {
	Trabajador string                    `json:"trabajador"`
	Resultado  *domain.CalculationResult `json:"resultado,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

type jsonDocument struct {
	Catalogo   int                  `json:"catalogo"`
	Empresa    domain.CompanyConfig `json:"empresa"`
	Resultados []jsonItem           `json:"resultados"`
}

// Format renders the result set. Failed items carry the error message in
// place of the result so a batch with partial failures still round-trips.
func (j JSONFormatter) Format(rs *ResultSet) ([]byte, error) {
	doc := jsonDocument{
		Catalogo:   rs.CatalogYear,
		Empresa:    rs.Company,
		Resultados: make([]jsonItem, 0, len(rs.Items)),
	}
	for _, item := range rs.Items {
		ji := jsonItem{Trabajador: item.Worker.Name}
		if item.Err != nil {
			ji.Error = item.Err.Error()
		} else {
			ji.Resultado = item.Result
		}
		doc.Resultados = append(doc.Resultados, ji)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Package output renders calculation results for terminals, pipes and files.
package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/domain"
)

// ResultSet is everything a formatter needs: the company the batch ran for,
// the catalog year the numbers came from and the per-worker items.
type ResultSet struct {
	CatalogYear int
	Company     domain.CompanyConfig
	Items       []calculation.BatchItem
}

// ResultFormatter renders a result set into a byte stream.
type ResultFormatter interface {
	Name() string
	Format(rs *ResultSet) ([]byte, error)
}

// GetFormatter returns the formatter registered under name.
func GetFormatter(name string) (ResultFormatter, error) {
	switch name {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal fraction as percentage
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

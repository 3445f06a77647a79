// Prints the statutory integration factor by seniority so payroll numbers
// can be spot-checked against the table the IMSS publishes.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcarrillo/cpgo/internal/catalog"
)

func main() {
	cat, err := catalog.Load("")
	if err != nil {
		fmt.Println("catalogo:", err)
		return
	}

	year := decimal.NewFromInt(365)
	daily := decimal.RequireFromString("500")

	fmt.Printf("Factor de integracion por antiguedad (catalogo %d, salario diario %s):\n\n",
		cat.Year, daily.StringFixed(2))
	fmt.Println("anios  vacaciones  factor   sbc diario")
	for s := 1; s <= 20; s++ {
		vac := decimal.NewFromInt(int64(cat.VacationDays(s)))
		benefitDays := cat.LegalMinAguinaldoDays.Add(vac.Mul(cat.LegalMinVacationPremium))
		factor := year.Add(benefitDays).Div(year).Round(4)

		sbc := daily.Mul(factor).Round(2)
		if cap := cat.SBCCap(); sbc.GreaterThan(cap) {
			sbc = cap
		}
		fmt.Printf("%5d  %10s  %7s  %10s\n", s, vac.String(), factor.String(), sbc.StringFixed(2))
	}
}

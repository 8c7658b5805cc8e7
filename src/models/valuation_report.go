package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValuationReportRow carries the computed figures for one contract. Fields
// that only exist for european exercise are pointers and render as a dash
// when unset.
type ValuationReportRow struct {
	Symbol         string
	OptionType     OptionType
	ExerciseStyle  ExerciseStyle
	BsPrice        *float64
	BopmPrice      float64
	Greeks         *Greeks
	ProbOfProfit   *float64
	ProbITM        *float64
	ExpectedReturn *float64
}

type ValuationReport struct {
	Rows []ValuationReportRow
}

func (r ValuationReport) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"SYMBOL", "TYPE", "STYLE", "BS PRICE", "BOPM PRICE", "DELTA", "GAMMA", "VEGA", "THETA", "RHO", "POP", "ITM"})
	display.WriteString("Valuations:\n")

	for _, row := range r.Rows {
		bsPrice := "-"
		if row.BsPrice != nil {
			bsPrice = fmt.Sprintf("$%s", p.Sprintf("%.4f", *row.BsPrice))
		}

		bopmPrice := fmt.Sprintf("$%s", p.Sprintf("%.4f", row.BopmPrice))

		delta, gamma, vega, theta, rho := "-", "-", "-", "-", "-"
		if row.Greeks != nil {
			delta = fmt.Sprintf("%.4f", row.Greeks.Delta)
			gamma = fmt.Sprintf("%.4f", row.Greeks.Gamma)
			vega = fmt.Sprintf("%.4f", row.Greeks.Vega)
			theta = fmt.Sprintf("%.4f", row.Greeks.Theta)
			rho = fmt.Sprintf("%.4f", row.Greeks.Rho)
		}

		pop := "-"
		if row.ProbOfProfit != nil {
			pop = fmt.Sprintf("%.2f%%", *row.ProbOfProfit*100)
		}

		itm := "-"
		if row.ProbITM != nil {
			itm = fmt.Sprintf("%.2f%%", *row.ProbITM*100)
		}

		table.Append([]string{row.Symbol, string(row.OptionType), string(row.ExerciseStyle), bsPrice, bopmPrice, delta, gamma, vega, theta, rho, pop, itm})
	}

	table.Render()
	return display.String()
}

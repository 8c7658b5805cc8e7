package portfolio

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PositionStats struct {
	Symbol           string
	AnnualizedReturn float64
	AnnualizedVol    float64
	SharpeRatio      float64
	Beta             float64
	Alpha            float64
}

type PortfolioStats struct {
	Positions []PositionStats
}

func (s PortfolioStats) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"SYMBOL", "ANN RETURN", "ANN VOL", "SHARPE", "BETA", "ALPHA"})
	display.WriteString("Positions:\n")

	for _, position := range s.Positions {
		annReturn := p.Sprintf("%.2f%%", position.AnnualizedReturn*100)
		annVol := p.Sprintf("%.2f%%", position.AnnualizedVol*100)
		sharpe := fmt.Sprintf("%.4f", position.SharpeRatio)
		beta := fmt.Sprintf("%.4f", position.Beta)
		alpha := p.Sprintf("%.2f%%", position.Alpha*100)

		table.Append([]string{position.Symbol, annReturn, annVol, sharpe, beta, alpha})
	}

	table.Render()
	return display.String()
}

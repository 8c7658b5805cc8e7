package portfolio

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/options-lab/src/models"
)

type NamedSeries struct {
	Name   string
	Values []float64
}

type CorrelationMatrix struct {
	Names  []string
	Values [][]float64
}

// NewCorrelationMatrix computes the pairwise Pearson correlation of the
// given series. All series must have the same length.
func NewCorrelationMatrix(series []NamedSeries) (*CorrelationMatrix, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("NewCorrelationMatrix: need at least 2 series, got %d: %w", len(series), models.InvalidInputErr)
	}

	length := len(series[0].Values)
	for _, s := range series {
		if len(s.Values) != length {
			return nil, fmt.Errorf("NewCorrelationMatrix: series %s has length %d, expected %d: %w", s.Name, len(s.Values), length, models.InvalidInputErr)
		}
	}

	names := make([]string, len(series))
	values := make([][]float64, len(series))
	for i := range series {
		names[i] = series[i].Name
		values[i] = make([]float64, len(series))
		values[i][i] = 1
	}

	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			correlation, err := stats.Correlation(series[i].Values, series[j].Values)
			if err != nil {
				return nil, fmt.Errorf("NewCorrelationMatrix: failed to correlate %s with %s: %v", series[i].Name, series[j].Name, err)
			}

			values[i][j] = correlation
			values[j][i] = correlation
		}
	}

	return &CorrelationMatrix{
		Names:  names,
		Values: values,
	}, nil
}

func (m *CorrelationMatrix) String() string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader(append([]string{""}, m.Names...))
	display.WriteString("Correlation:\n")

	for i, name := range m.Names {
		row := []string{name}
		for _, value := range m.Values[i] {
			row = append(row, fmt.Sprintf("%.4f", value))
		}

		table.Append(row)
	}

	table.Render()
	return display.String()
}

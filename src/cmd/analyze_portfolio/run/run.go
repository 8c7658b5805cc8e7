package run

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/marketdata"
	"github.com/jiaming2012/options-lab/src/models"
	"github.com/jiaming2012/options-lab/src/portfolio"
)

type RunArgs struct {
	Positions     []string
	MarketSymbol  string
	MarketPath    string
	AnnualRatePct float64
	VolWindow     int
}

type RunResult struct {
	Stats       portfolio.PortfolioStats
	Correlation *portfolio.CorrelationMatrix
}

func parsePositions(positions []string) (map[string]string, []string, error) {
	paths := make(map[string]string)
	var symbols []string

	for _, position := range positions {
		parts := strings.SplitN(position, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, nil, fmt.Errorf("parsePositions: position %q must have the form SYMBOL=path.csv: %w", position, models.InvalidInputErr)
		}

		symbol := strings.ToUpper(parts[0])
		if _, found := paths[symbol]; found {
			return nil, nil, fmt.Errorf("parsePositions: duplicate position %s: %w", symbol, models.InvalidInputErr)
		}

		paths[symbol] = parts[1]
		symbols = append(symbols, symbol)
	}

	return paths, symbols, nil
}

// Run computes per-position risk/return metrics against a market benchmark
// and the correlation matrix of their daily returns. All series are
// intersected on their shared dates first.
func Run(args RunArgs) (RunResult, error) {
	paths, symbols, err := parsePositions(args.Positions)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if len(symbols) == 0 {
		return RunResult{}, fmt.Errorf("Run: no positions given: %w", models.InvalidInputErr)
	}

	var series []portfolio.NamedCandles
	for _, symbol := range symbols {
		candles, err := marketdata.ImportCandles(paths[symbol])
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", symbol, err)
		}

		series = append(series, portfolio.NamedCandles{Name: symbol, Candles: candles})
	}

	marketCandles, err := marketdata.ImportCandles(args.MarketPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %s: %w", args.MarketSymbol, err)
	}

	series = append(series, portfolio.NamedCandles{Name: args.MarketSymbol, Candles: marketCandles})

	aligned, err := portfolio.AlignCloses(series)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	log.Infof("Aligned %d series on %d shared dates", len(aligned), len(aligned[0].Values))

	marketCloses := aligned[len(aligned)-1].Values

	var stats portfolio.PortfolioStats
	var returnSeries []portfolio.NamedSeries

	for _, s := range aligned {
		dailyReturns, err := portfolio.DailyReturns(s.Values)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		returnSeries = append(returnSeries, portfolio.NamedSeries{Name: s.Name, Values: dailyReturns})

		if s.Name == args.MarketSymbol {
			continue
		}

		annReturn, err := portfolio.AnnualizedReturn(s.Values)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		vols, err := portfolio.AnnualizedVolatility(s.Values, args.VolWindow)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		logReturns, err := portfolio.LogReturns(s.Values)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		sharpe, err := portfolio.SharpeRatio(logReturns, portfolio.ConstantRate(args.AnnualRatePct, len(logReturns)))
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		riskParams, err := portfolio.RiskParams(s.Values, marketCloses, portfolio.ConstantRate(args.AnnualRatePct, len(s.Values)))
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", s.Name, err)
		}

		stats.Positions = append(stats.Positions, portfolio.PositionStats{
			Symbol:           s.Name,
			AnnualizedReturn: annReturn,
			AnnualizedVol:    vols[len(vols)-1],
			SharpeRatio:      sharpe,
			Beta:             riskParams.Beta,
			Alpha:            riskParams.Alpha,
		})
	}

	correlation, err := portfolio.NewCorrelationMatrix(returnSeries)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	return RunResult{
		Stats:       stats,
		Correlation: correlation,
	}, nil
}

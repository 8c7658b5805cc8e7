package portfolio

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-lab/src/models"
)

const tradingDays = 252

// DailyReturns converts a close series into simple daily returns.
func DailyReturns(closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, fmt.Errorf("DailyReturns: need at least 2 closes, got %d: %w", len(closes), models.InvalidInputErr)
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 {
			return nil, fmt.Errorf("DailyReturns: close must be positive, got %v: %w", closes[i-1], models.InvalidInputErr)
		}

		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	return returns, nil
}

// LogReturns converts a close series into daily log returns.
func LogReturns(closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, fmt.Errorf("LogReturns: need at least 2 closes, got %d: %w", len(closes), models.InvalidInputErr)
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return nil, fmt.Errorf("LogReturns: close must be positive: %w", models.InvalidInputErr)
		}

		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}

	return returns, nil
}

// AnnualizedReturn compounds the growth of a close series down to a daily
// rate and projects it over a 252 day year.
func AnnualizedReturn(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("AnnualizedReturn: need at least 2 closes, got %d: %w", len(closes), models.InvalidInputErr)
	}

	first := closes[0]
	last := closes[len(closes)-1]
	if first <= 0 || last <= 0 {
		return 0, fmt.Errorf("AnnualizedReturn: closes must be positive: %w", models.InvalidInputErr)
	}

	compoundGrowth := last / first
	dailyGrowth := math.Pow(compoundGrowth, 1/float64(len(closes)))

	return math.Pow(dailyGrowth, tradingDays) - 1, nil
}

// AnnualizedVolatility returns the rolling annualized volatility of a close
// series. Entries before the first full window are zero and the series is
// aligned to the input, with a zero return in the first slot.
func AnnualizedVolatility(closes []float64, window int) ([]float64, error) {
	if window < 2 {
		return nil, fmt.Errorf("AnnualizedVolatility: window must be at least 2, got %d: %w", window, models.InvalidInputErr)
	}

	if len(closes) < window {
		return nil, fmt.Errorf("AnnualizedVolatility: need at least %d closes, got %d: %w", window, len(closes), models.InvalidInputErr)
	}

	returns := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return nil, fmt.Errorf("AnnualizedVolatility: close must be positive: %w", models.InvalidInputErr)
		}

		returns[i] = math.Log(closes[i] / closes[i-1])
	}

	out := make([]float64, len(closes))
	for i := window - 1; i < len(returns); i++ {
		sd, err := stats.StandardDeviationSample(returns[i-window+1 : i+1])
		if err != nil {
			return nil, fmt.Errorf("AnnualizedVolatility: failed to calculate the standard deviation: %v", err)
		}

		out[i] = sd * math.Sqrt(tradingDays)
	}

	return out, nil
}

package portfolio

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-lab/src/models"
)

// SharpeRatio is the annualized ratio of mean excess return to its standard
// deviation. Rates are annual percentages, one per return observation, and
// are converted to a daily log rate before subtraction.
func SharpeRatio(returns []float64, annualRatesPct []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("SharpeRatio: need at least 2 returns, got %d: %w", len(returns), models.InvalidInputErr)
	}

	if len(returns) != len(annualRatesPct) {
		return 0, fmt.Errorf("SharpeRatio: returns length %d does not match rates length %d: %w", len(returns), len(annualRatesPct), models.InvalidInputErr)
	}

	excess := make([]float64, len(returns))
	for i, ret := range returns {
		excess[i] = ret - math.Log(1+annualRatesPct[i]/100/tradingDays)
	}

	mean, err := stats.Mean(excess)
	if err != nil {
		return 0, fmt.Errorf("SharpeRatio: failed to calculate mean: %v", err)
	}

	sd, err := stats.StandardDeviationSample(excess)
	if err != nil {
		return 0, fmt.Errorf("SharpeRatio: failed to calculate the standard deviation: %v", err)
	}

	if sd == 0 {
		return 0, fmt.Errorf("SharpeRatio: excess returns have zero variance: %w", models.InvalidInputErr)
	}

	return mean / sd * math.Sqrt(tradingDays), nil
}

// ConstantRate builds a flat annual rate series, used when no central bank
// series is available.
func ConstantRate(annualRatePct float64, n int) []float64 {
	rates := make([]float64, n)
	for i := range rates {
		rates[i] = annualRatePct
	}

	return rates
}

package pricing

import (
	"fmt"
	"math"

	"github.com/jiaming2012/options-lab/src/models"
)

const (
	ivTolerance = 1e-5
	ivMaxIter   = 100
	vegaFloor   = 1e-12
)

// ImpliedVolatility backs the volatility out of a european market premium
// with Newton-Raphson, using vega as the derivative. The contract's own
// Volatility field is ignored.
func ImpliedVolatility(c models.OptionContract, sigmaInit, marketPrice float64) (float64, error) {
	if sigmaInit <= 0 {
		return 0, fmt.Errorf("ImpliedVolatility: initial guess must be positive, got %v: %w", sigmaInit, models.InvalidInputErr)
	}

	if marketPrice <= 0 {
		return 0, fmt.Errorf("ImpliedVolatility: market price must be positive, got %v: %w", marketPrice, models.InvalidInputErr)
	}

	trial := c
	trial.Volatility = sigmaInit

	if err := trial.Validate(); err != nil {
		return 0, fmt.Errorf("ImpliedVolatility: %w", err)
	}

	if trial.ExerciseStyle != models.European {
		return 0, fmt.Errorf("ImpliedVolatility: exercise style must be european, got %s: %w", trial.ExerciseStyle, models.InvalidInputErr)
	}

	for i := 0; i < ivMaxIter; i++ {
		result, err := BlackScholesPrice(trial)
		if err != nil {
			return 0, fmt.Errorf("ImpliedVolatility: price at sigma %v: %w", trial.Volatility, err)
		}

		diff := result.Value - marketPrice
		if math.Abs(diff) < ivTolerance {
			return trial.Volatility, nil
		}

		vega := trial.Spot * math.Exp(-trial.DividendYield*trial.TimeToExpiry) * stdNormal.Prob(D1(trial)) * math.Sqrt(trial.TimeToExpiry)
		if vega < vegaFloor {
			return 0, fmt.Errorf("ImpliedVolatility: vega vanished at sigma %v: %w", trial.Volatility, models.NoConvergenceErr)
		}

		sigmaNew := trial.Volatility - diff/vega

		// Newton can overshoot into negative volatility, back off instead
		if sigmaNew <= 0 {
			sigmaNew = trial.Volatility / 2
		}

		trial.Volatility = sigmaNew
	}

	return 0, fmt.Errorf("ImpliedVolatility: no solution after %d iterations: %w", ivMaxIter, models.NoConvergenceErr)
}

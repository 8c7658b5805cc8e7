package pricing

import (
	"fmt"
	"math"

	"github.com/jiaming2012/options-lab/src/models"
)

// LatticeFactors are the per-step constants of a Cox-Ross-Rubinstein tree.
// Up and Down recombine, Up*Down = 1, and ProbUp is the risk-neutral
// probability of an up move.
type LatticeFactors struct {
	StepSize float64
	Up       float64
	Down     float64
	ProbUp   float64
}

func NewLatticeFactors(c models.OptionContract, params models.LatticeParameters) (LatticeFactors, error) {
	if err := c.Validate(); err != nil {
		return LatticeFactors{}, fmt.Errorf("NewLatticeFactors: %w", err)
	}

	if err := params.Validate(); err != nil {
		return LatticeFactors{}, fmt.Errorf("NewLatticeFactors: %w", err)
	}

	stepSize := c.TimeToExpiry / float64(params.NumSteps)
	up := math.Exp(c.Volatility * math.Sqrt(stepSize))
	down := 1.0 / up

	growth := math.Exp((c.RiskFreeRate - c.DividendYield) * stepSize)
	probUp := (growth - down) / (up - down)

	if probUp < 0 || probUp > 1 {
		return LatticeFactors{}, fmt.Errorf("NewLatticeFactors: risk-neutral probability %v is outside [0, 1], inputs admit arbitrage: %w", probUp, models.InvalidInputErr)
	}

	return LatticeFactors{
		StepSize: stepSize,
		Up:       up,
		Down:     down,
		ProbUp:   probUp,
	}, nil
}

// SpotAt returns the spot level after the given number of up and down moves.
func (f LatticeFactors) SpotAt(spot float64, upMoves, downMoves int) float64 {
	return spot * math.Pow(f.Up, float64(upMoves)) * math.Pow(f.Down, float64(downMoves))
}

// BinomialPrice values a contract of either exercise style on a recombining
// binomial tree. Leaf payoffs are the intrinsic values; interior nodes hold
// the discounted expectation of their children, floored at the immediate
// exercise payoff for american contracts.
func BinomialPrice(c models.OptionContract, params models.LatticeParameters) (models.PriceResult, error) {
	factors, err := NewLatticeFactors(c, params)
	if err != nil {
		return models.PriceResult{}, fmt.Errorf("BinomialPrice: %w", err)
	}

	n := params.NumSteps
	discount := math.Exp(-c.RiskFreeRate * factors.StepSize)

	// values[j] is the node with j down moves at the current step
	values := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		values[j] = c.IntrinsicValue(factors.SpotAt(c.Spot, n-j, j))
	}

	for step := n - 1; step >= 0; step-- {
		for j := 0; j <= step; j++ {
			value := discount * (factors.ProbUp*values[j] + (1-factors.ProbUp)*values[j+1])

			if c.ExerciseStyle == models.American {
				exercise := c.IntrinsicValue(factors.SpotAt(c.Spot, step-j, j))
				value = math.Max(value, exercise)
			}

			values[j] = value
		}
	}

	return models.PriceResult{Value: math.Max(values[0], 0)}, nil
}

package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jiaming2012/options-lab/src/models"
)

// ProfitProbabilities holds the probability that holding the contract to
// expiry beats its premium (POP) and the probability that it expires in the
// money (ITM).
type ProfitProbabilities struct {
	ProbOfProfit float64
	ProbITM      float64
}

// BlackScholesProbabilities estimates POP and ITM for a european contract
// under the model's own premium. POP shifts the strike to the break-even
// level, strike plus premium for calls and strike minus premium for puts.
func BlackScholesProbabilities(c models.OptionContract) (ProfitProbabilities, error) {
	result, err := BlackScholesPrice(c)
	if err != nil {
		return ProfitProbabilities{}, fmt.Errorf("BlackScholesProbabilities: %w", err)
	}

	sqrtT := math.Sqrt(c.TimeToExpiry)
	drift := (c.RiskFreeRate - c.DividendYield + 0.5*c.Volatility*c.Volatility) * c.TimeToExpiry

	var breakEven float64
	switch c.OptionType {
	case models.Call:
		breakEven = c.Strike + result.Value
	case models.Put:
		breakEven = c.Strike - result.Value
	}

	if breakEven <= 0 {
		return ProfitProbabilities{}, fmt.Errorf("BlackScholesProbabilities: break-even level %v must be positive: %w", breakEven, models.InvalidInputErr)
	}

	d1BreakEven := (math.Log(c.Spot/breakEven) + drift) / (c.Volatility * sqrtT)
	d2BreakEven := d1BreakEven - c.Volatility*sqrtT

	switch c.OptionType {
	case models.Call:
		return ProfitProbabilities{
			ProbOfProfit: stdNormal.CDF(d2BreakEven),
			ProbITM:      stdNormal.CDF(D2(c)),
		}, nil
	default:
		return ProfitProbabilities{
			ProbOfProfit: 1 - stdNormal.CDF(d2BreakEven),
			ProbITM:      1 - stdNormal.CDF(D2(c)),
		}, nil
	}
}

// BinomialProbabilities estimates POP and ITM on the lattice under the real
// measure implied by the expected return of the underlying. A leaf is
// profitable when its payoff beats the future value of the model premium.
func BinomialProbabilities(c models.OptionContract, params models.LatticeParameters, assetReturn float64) (ProfitProbabilities, error) {
	result, err := BinomialPrice(c, params)
	if err != nil {
		return ProfitProbabilities{}, fmt.Errorf("BinomialProbabilities: %w", err)
	}

	factors, err := NewLatticeFactors(c, params)
	if err != nil {
		return ProfitProbabilities{}, fmt.Errorf("BinomialProbabilities: %w", err)
	}

	probUpReal := (math.Exp(assetReturn*factors.StepSize) - factors.Down) / (factors.Up - factors.Down)
	if probUpReal < 0 || probUpReal > 1 {
		return ProfitProbabilities{}, fmt.Errorf("BinomialProbabilities: real-measure probability %v is outside [0, 1], asset return %v is inconsistent with the lattice: %w", probUpReal, assetReturn, models.InvalidInputErr)
	}

	n := params.NumSteps
	dist := distuv.Binomial{N: float64(n), P: probUpReal}
	premiumAtExpiry := result.Value * math.Exp(c.RiskFreeRate*c.TimeToExpiry)

	var pop, itm float64
	for j := 0; j <= n; j++ {
		finalSpot := factors.SpotAt(c.Spot, n-j, j)

		// the leaf with j down moves is reached with the probability of
		// its n-j up moves
		probability := dist.Prob(float64(n - j))

		var isITM bool
		switch c.OptionType {
		case models.Call:
			isITM = finalSpot > c.Strike
		case models.Put:
			isITM = finalSpot < c.Strike
		}

		if isITM {
			itm += probability
		}

		if c.IntrinsicValue(finalSpot) > premiumAtExpiry {
			pop += probability
		}
	}

	return ProfitProbabilities{
		ProbOfProfit: pop,
		ProbITM:      itm,
	}, nil
}

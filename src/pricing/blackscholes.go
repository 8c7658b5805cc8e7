package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jiaming2012/options-lab/src/models"
)

var stdNormal = distuv.UnitNormal

// D1 is the d+ term of the Black-Scholes model.
func D1(c models.OptionContract) float64 {
	num := math.Log(c.Spot/c.Strike) + (c.RiskFreeRate-c.DividendYield+0.5*c.Volatility*c.Volatility)*c.TimeToExpiry
	denom := c.Volatility * math.Sqrt(c.TimeToExpiry)
	return num / denom
}

// D2 is the d- term of the Black-Scholes model.
func D2(c models.OptionContract) float64 {
	return D1(c) - c.Volatility*math.Sqrt(c.TimeToExpiry)
}

// BlackScholesPrice computes the closed-form price of a european contract.
func BlackScholesPrice(c models.OptionContract) (models.PriceResult, error) {
	if err := c.Validate(); err != nil {
		return models.PriceResult{}, fmt.Errorf("BlackScholesPrice: %w", err)
	}

	if c.ExerciseStyle != models.European {
		return models.PriceResult{}, fmt.Errorf("BlackScholesPrice: exercise style must be european, got %s: %w", c.ExerciseStyle, models.InvalidInputErr)
	}

	d1 := D1(c)
	d2 := D2(c)

	discountedStrike := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)
	adjustedSpot := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)

	var value float64
	switch c.OptionType {
	case models.Call:
		value = stdNormal.CDF(d1)*adjustedSpot - stdNormal.CDF(d2)*discountedStrike
	case models.Put:
		value = stdNormal.CDF(-d2)*discountedStrike - stdNormal.CDF(-d1)*adjustedSpot
	default:
		return models.PriceResult{}, fmt.Errorf("BlackScholesPrice: invalid option type %s: %w", c.OptionType, models.InvalidInputErr)
	}

	return models.PriceResult{Value: math.Max(value, 0)}, nil
}

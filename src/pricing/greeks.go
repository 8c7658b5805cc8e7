package pricing

import (
	"fmt"
	"math"

	"github.com/jiaming2012/options-lab/src/models"
)

// BlackScholesGreeks computes delta, gamma, vega, theta and rho of a
// european contract. Theta is per year, vega per unit of volatility.
func BlackScholesGreeks(c models.OptionContract) (models.Greeks, error) {
	if err := c.Validate(); err != nil {
		return models.Greeks{}, fmt.Errorf("BlackScholesGreeks: %w", err)
	}

	if c.ExerciseStyle != models.European {
		return models.Greeks{}, fmt.Errorf("BlackScholesGreeks: exercise style must be european, got %s: %w", c.ExerciseStyle, models.InvalidInputErr)
	}

	d1 := D1(c)
	d2 := D2(c)
	sqrtT := math.Sqrt(c.TimeToExpiry)

	discountedStrike := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)
	adjustedSpot := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)
	density := stdNormal.Prob(d1)

	gamma := math.Exp(-c.DividendYield*c.TimeToExpiry) * density / (c.Spot * c.Volatility * sqrtT)
	vega := adjustedSpot * density * sqrtT

	var delta, theta, rho float64
	switch c.OptionType {
	case models.Call:
		delta = math.Exp(-c.DividendYield*c.TimeToExpiry) * stdNormal.CDF(d1)
		theta = -(adjustedSpot*density*c.Volatility)/(2*sqrtT) - c.RiskFreeRate*discountedStrike*stdNormal.CDF(d2) + c.DividendYield*adjustedSpot*stdNormal.CDF(d1)
		rho = discountedStrike * c.TimeToExpiry * stdNormal.CDF(d2)
	case models.Put:
		delta = math.Exp(-c.DividendYield*c.TimeToExpiry) * (stdNormal.CDF(d1) - 1)
		theta = -(adjustedSpot*density*c.Volatility)/(2*sqrtT) + c.RiskFreeRate*discountedStrike*stdNormal.CDF(-d2) - c.DividendYield*adjustedSpot*stdNormal.CDF(-d1)
		rho = -discountedStrike * c.TimeToExpiry * stdNormal.CDF(-d2)
	default:
		return models.Greeks{}, fmt.Errorf("BlackScholesGreeks: invalid option type %s: %w", c.OptionType, models.InvalidInputErr)
	}

	return models.Greeks{
		Delta: delta,
		Gamma: gamma,
		Vega:  vega,
		Theta: theta,
		Rho:   rho,
	}, nil
}

package pricing

import (
	"fmt"

	"github.com/jiaming2012/options-lab/src/models"
)

// ExpectedReturn estimates the expected return of a european contract from
// the expected return of its underlying, through the option's elasticity
// omega = delta * spot / premium.
func ExpectedReturn(c models.OptionContract, assetReturn float64) (float64, error) {
	result, err := BlackScholesPrice(c)
	if err != nil {
		return 0, fmt.Errorf("ExpectedReturn: %w", err)
	}

	if result.Value == 0 {
		return 0, fmt.Errorf("ExpectedReturn: premium is zero, elasticity is undefined: %w", models.InvalidInputErr)
	}

	greeks, err := BlackScholesGreeks(c)
	if err != nil {
		return 0, fmt.Errorf("ExpectedReturn: %w", err)
	}

	omega := greeks.Delta * c.Spot / result.Value

	return c.RiskFreeRate + omega*(assetReturn-c.RiskFreeRate), nil
}

package models

import (
	"fmt"
	"math"
)

// OptionContract holds the market parameters of a single valuation query.
// It is constructed once per query and never mutated.
type OptionContract struct {
	Spot          float64
	Strike        float64
	TimeToExpiry  float64
	Volatility    float64
	RiskFreeRate  float64
	DividendYield float64
	OptionType    OptionType
	ExerciseStyle ExerciseStyle
}

func NewOptionContract(spot, strike, timeToExpiry, volatility, riskFreeRate, dividendYield float64, optionType OptionType, exerciseStyle ExerciseStyle) (OptionContract, error) {
	c := OptionContract{
		Spot:          spot,
		Strike:        strike,
		TimeToExpiry:  timeToExpiry,
		Volatility:    volatility,
		RiskFreeRate:  riskFreeRate,
		DividendYield: dividendYield,
		OptionType:    optionType,
		ExerciseStyle: exerciseStyle,
	}

	if err := c.Validate(); err != nil {
		return OptionContract{}, fmt.Errorf("NewOptionContract: %w", err)
	}

	return c, nil
}

func (c OptionContract) Validate() error {
	if c.Spot <= 0 {
		return fmt.Errorf("OptionContract: Validate: spot must be positive, got %v: %w", c.Spot, InvalidInputErr)
	}

	if c.Strike <= 0 {
		return fmt.Errorf("OptionContract: Validate: strike must be positive, got %v: %w", c.Strike, InvalidInputErr)
	}

	if c.TimeToExpiry <= 0 {
		return fmt.Errorf("OptionContract: Validate: time to expiry must be positive, got %v: %w", c.TimeToExpiry, InvalidInputErr)
	}

	if c.Volatility <= 0 {
		return fmt.Errorf("OptionContract: Validate: volatility must be positive, got %v: %w", c.Volatility, InvalidInputErr)
	}

	if c.DividendYield < 0 {
		return fmt.Errorf("OptionContract: Validate: dividend yield must be non-negative, got %v: %w", c.DividendYield, InvalidInputErr)
	}

	if err := c.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionContract: Validate: %w", err)
	}

	if err := c.ExerciseStyle.Validate(); err != nil {
		return fmt.Errorf("OptionContract: Validate: %w", err)
	}

	return nil
}

// IntrinsicValue is the payoff of immediate exercise at the given spot level.
func (c OptionContract) IntrinsicValue(spot float64) float64 {
	switch c.OptionType {
	case Call:
		return math.Max(spot-c.Strike, 0)
	case Put:
		return math.Max(c.Strike-spot, 0)
	default:
		return 0
	}
}

func (c OptionContract) String() string {
	return fmt.Sprintf("spot: %v, strike: %v, timeToExpiry: %v, volatility: %v, riskFreeRate: %v, dividendYield: %v, type: %s, style: %s",
		c.Spot, c.Strike, c.TimeToExpiry, c.Volatility, c.RiskFreeRate, c.DividendYield, c.OptionType, c.ExerciseStyle)
}

package models

import (
	"fmt"
	"strings"
)

type ValuationYAML struct {
	Symbol        string  `yaml:"symbol"`
	Spot          float64 `yaml:"spot"`
	Strike        float64 `yaml:"strike"`
	TimeToExpiry  float64 `yaml:"timeToExpiry"`
	Volatility    float64 `yaml:"volatility"`
	RiskFreeRate  float64 `yaml:"riskFreeRate"`
	DividendYield float64 `yaml:"dividendYield,omitempty"`
	OptionType    string  `yaml:"optionType"`
	ExerciseStyle string  `yaml:"exerciseStyle"`
	NumSteps      int     `yaml:"numSteps,omitempty"`
}

const defaultNumSteps = 100

func (v ValuationYAML) ToContract() (OptionContract, error) {
	contract, err := NewOptionContract(
		v.Spot,
		v.Strike,
		v.TimeToExpiry,
		v.Volatility,
		v.RiskFreeRate,
		v.DividendYield,
		OptionType(strings.ToLower(v.OptionType)),
		ExerciseStyle(strings.ToLower(v.ExerciseStyle)),
	)

	if err != nil {
		return OptionContract{}, fmt.Errorf("ValuationYAML: ToContract: %w", err)
	}

	return contract, nil
}

// ToLatticeParameters falls back to 100 steps when numSteps is omitted.
func (v ValuationYAML) ToLatticeParameters() (LatticeParameters, error) {
	numSteps := v.NumSteps
	if numSteps == 0 {
		numSteps = defaultNumSteps
	}

	params, err := NewLatticeParameters(numSteps)
	if err != nil {
		return LatticeParameters{}, fmt.Errorf("ValuationYAML: ToLatticeParameters: %w", err)
	}

	return params, nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

const valuationsYAML = `
valuations:
  - symbol: AAPL240920C00217500
    spot: 220.5
    strike: 217.5
    timeToExpiry: 0.08
    volatility: 0.25
    riskFreeRate: 0.05
    optionType: call
    exerciseStyle: european
  - symbol: SPX240621P04800000
    spot: 5200
    strike: 4800
    timeToExpiry: 0.5
    volatility: 0.15
    riskFreeRate: 0.05
    dividendYield: 0.013
    optionType: Put
    exerciseStyle: American
    numSteps: 500
`

func TestValuationsConfigYAML(t *testing.T) {
	var config ValuationsConfigYAML
	err := yaml.Unmarshal([]byte(valuationsYAML), &config)
	assert.NoError(t, err)
	assert.Len(t, config.Valuations, 2)

	t.Run("lookup is case insensitive", func(t *testing.T) {
		valuation, err := config.GetValuation("aapl240920c00217500")
		assert.NoError(t, err)
		assert.Equal(t, 220.5, valuation.Spot)
	})

	t.Run("missing symbol", func(t *testing.T) {
		_, err := config.GetValuation("TSLA240920C00250000")
		assert.ErrorIs(t, err, SymbolNotFoundErr)
	})

	t.Run("to contract normalizes enum case", func(t *testing.T) {
		valuation, err := config.GetValuation("SPX240621P04800000")
		assert.NoError(t, err)

		contract, err := valuation.ToContract()
		assert.NoError(t, err)
		assert.Equal(t, Put, contract.OptionType)
		assert.Equal(t, American, contract.ExerciseStyle)
		assert.Equal(t, 0.013, contract.DividendYield)
	})

	t.Run("explicit num steps", func(t *testing.T) {
		valuation, err := config.GetValuation("SPX240621P04800000")
		assert.NoError(t, err)

		params, err := valuation.ToLatticeParameters()
		assert.NoError(t, err)
		assert.Equal(t, 500, params.NumSteps)
	})

	t.Run("num steps defaults when omitted", func(t *testing.T) {
		valuation, err := config.GetValuation("AAPL240920C00217500")
		assert.NoError(t, err)

		params, err := valuation.ToLatticeParameters()
		assert.NoError(t, err)
		assert.Equal(t, defaultNumSteps, params.NumSteps)
	})

	t.Run("invalid contract fields surface as invalid input", func(t *testing.T) {
		valuation := ValuationYAML{
			Symbol:        "BAD",
			Spot:          100,
			Strike:        90,
			TimeToExpiry:  1,
			Volatility:    0,
			OptionType:    "call",
			ExerciseStyle: "european",
		}

		_, err := valuation.ToContract()
		assert.ErrorIs(t, err, InvalidInputErr)
	})
}

package pricing

import (
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-lab/src/models"
)

func TestBlackScholesProbabilities(t *testing.T) {
	t.Run("probabilities are proper", func(t *testing.T) {
		cases := []struct {
			name       string
			optionType models.OptionType
			strike     float64
		}{
			{"itm call", models.Call, 90},
			{"otm call", models.Call, 120},
			{"itm put", models.Put, 110},
			{"otm put", models.Put, 80},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := newContract(t, 100, tc.strike, 1, 0.2, 0.05, 0, tc.optionType, models.European)

				probabilities, err := BlackScholesProbabilities(c)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, probabilities.ProbOfProfit, 0.0)
				assert.LessOrEqual(t, probabilities.ProbOfProfit, 1.0)
				assert.GreaterOrEqual(t, probabilities.ProbITM, 0.0)
				assert.LessOrEqual(t, probabilities.ProbITM, 1.0)

				// paying the premium moves the break-even past the strike
				assert.Less(t, probabilities.ProbOfProfit, probabilities.ProbITM)
			})
		}
	})

	t.Run("itm probability matches the d2 term for calls", func(t *testing.T) {
		c := newContract(t, 100, 90, 1, 0.2, 0.05, 0, models.Call, models.European)

		probabilities, err := BlackScholesProbabilities(c)
		assert.NoError(t, err)
		assert.InDelta(t, distuv.UnitNormal.CDF(D2(c)), probabilities.ProbITM, 1e-12)
	})
}

func TestBinomialProbabilities(t *testing.T) {
	params := models.LatticeParameters{NumSteps: 500}

	t.Run("probabilities are proper", func(t *testing.T) {
		c := newContract(t, 100, 105, 0.5, 0.25, 0.05, 0, models.Call, models.European)

		probabilities, err := BinomialProbabilities(c, params, 0.08)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, probabilities.ProbOfProfit, 0.0)
		assert.LessOrEqual(t, probabilities.ProbOfProfit, 1.0)
		assert.GreaterOrEqual(t, probabilities.ProbITM, 0.0)
		assert.LessOrEqual(t, probabilities.ProbITM, 1.0)
		assert.LessOrEqual(t, probabilities.ProbOfProfit, probabilities.ProbITM)
	})

	t.Run("lattice itm converges to the closed form under the risk-neutral drift", func(t *testing.T) {
		c := newContract(t, 100, 90, 1, 0.2, 0.05, 0, models.Call, models.European)

		closedForm, err := BlackScholesProbabilities(c)
		assert.NoError(t, err)

		lattice, err := BinomialProbabilities(c, params, c.RiskFreeRate)
		assert.NoError(t, err)
		assert.InDelta(t, closedForm.ProbITM, lattice.ProbITM, 0.02)
	})

	t.Run("higher drift raises the call profit probability", func(t *testing.T) {
		c := newContract(t, 100, 105, 0.5, 0.25, 0.05, 0, models.Call, models.European)

		low, err := BinomialProbabilities(c, params, 0.0)
		assert.NoError(t, err)

		high, err := BinomialProbabilities(c, params, 0.15)
		assert.NoError(t, err)

		assert.Greater(t, high.ProbOfProfit, low.ProbOfProfit)
	})

	t.Run("drift inconsistent with the lattice", func(t *testing.T) {
		c := newContract(t, 100, 105, 1, 0.05, 0.01, 0, models.Call, models.European)

		_, err := BinomialProbabilities(c, models.LatticeParameters{NumSteps: 10}, 2.0)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("pmf over the leaves sums to one", func(t *testing.T) {
		c := newContract(t, 100, 100, 1, 0.2, 0.05, 0, models.Call, models.European)

		factors, err := NewLatticeFactors(c, params)
		assert.NoError(t, err)

		probUpReal := factors.ProbUp + 0.01
		dist := distuv.Binomial{N: float64(params.NumSteps), P: probUpReal}

		var total float64
		for k := 0; k <= params.NumSteps; k++ {
			total += dist.Prob(float64(k))
		}

		assert.InDelta(t, 1.0, total, 1e-9)
	})
}

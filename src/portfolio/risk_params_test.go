package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-lab/src/models"
)

func TestRiskParams(t *testing.T) {
	market := []float64{100, 102, 101, 104, 103, 106, 105, 108}

	t.Run("asset tracking the market has beta one and zero alpha", func(t *testing.T) {
		result, err := RiskParams(market, market, ConstantRate(5.0, len(market)))
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, result.Beta, 1e-9)
		assert.InDelta(t, 0.0, result.Alpha, 1e-9)
	})

	t.Run("leveraged asset has beta two", func(t *testing.T) {
		// asset returns are exactly twice the market returns
		marketReturns, err := DailyReturns(market)
		assert.NoError(t, err)

		asset := make([]float64, len(market))
		asset[0] = 50
		for i, r := range marketReturns {
			asset[i+1] = asset[i] * (1 + 2*r)
		}

		result, err := RiskParams(asset, market, ConstantRate(0, len(market)))
		assert.NoError(t, err)
		assert.InDelta(t, 2.0, result.Beta, 1e-9)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := RiskParams([]float64{100, 101}, market, ConstantRate(0, len(market)))
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("flat market has no variance", func(t *testing.T) {
		flat := []float64{100, 100, 100, 100}

		_, err := RiskParams([]float64{100, 101, 99, 102}, flat, ConstantRate(0, 4))
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

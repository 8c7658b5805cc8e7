package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-lab/src/models"
)

func TestBlackScholesGreeks(t *testing.T) {
	call := newContract(t, 100, 90, 1, 0.2, 0.05, 0, models.Call, models.European)
	put := newContract(t, 100, 90, 1, 0.2, 0.05, 0, models.Put, models.European)

	t.Run("delta bounds", func(t *testing.T) {
		callGreeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)
		assert.Greater(t, callGreeks.Delta, 0.0)
		assert.Less(t, callGreeks.Delta, 1.0)

		putGreeks, err := BlackScholesGreeks(put)
		assert.NoError(t, err)
		assert.Greater(t, putGreeks.Delta, -1.0)
		assert.Less(t, putGreeks.Delta, 0.0)

		// call delta minus put delta equals the dividend discount factor
		assert.InDelta(t, 1.0, callGreeks.Delta-putGreeks.Delta, 1e-12)
	})

	t.Run("gamma and vega are shared and positive", func(t *testing.T) {
		callGreeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)

		putGreeks, err := BlackScholesGreeks(put)
		assert.NoError(t, err)

		assert.Greater(t, callGreeks.Gamma, 0.0)
		assert.Greater(t, callGreeks.Vega, 0.0)
		assert.InDelta(t, callGreeks.Gamma, putGreeks.Gamma, 1e-12)
		assert.InDelta(t, callGreeks.Vega, putGreeks.Vega, 1e-12)
	})

	t.Run("delta matches a finite difference", func(t *testing.T) {
		greeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)

		h := 1e-4
		up := call
		up.Spot += h
		down := call
		down.Spot -= h

		upPrice, err := BlackScholesPrice(up)
		assert.NoError(t, err)

		downPrice, err := BlackScholesPrice(down)
		assert.NoError(t, err)

		assert.InDelta(t, (upPrice.Value-downPrice.Value)/(2*h), greeks.Delta, 1e-6)
	})

	t.Run("vega matches a finite difference", func(t *testing.T) {
		greeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)

		h := 1e-5
		up := call
		up.Volatility += h
		down := call
		down.Volatility -= h

		upPrice, err := BlackScholesPrice(up)
		assert.NoError(t, err)

		downPrice, err := BlackScholesPrice(down)
		assert.NoError(t, err)

		assert.InDelta(t, (upPrice.Value-downPrice.Value)/(2*h), greeks.Vega, 1e-4)
	})

	t.Run("theta matches a finite difference", func(t *testing.T) {
		greeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)

		h := 1e-6
		shorter := call
		shorter.TimeToExpiry -= h
		longer := call
		longer.TimeToExpiry += h

		shorterPrice, err := BlackScholesPrice(shorter)
		assert.NoError(t, err)

		longerPrice, err := BlackScholesPrice(longer)
		assert.NoError(t, err)

		assert.InDelta(t, -(longerPrice.Value-shorterPrice.Value)/(2*h), greeks.Theta, 1e-3)
	})

	t.Run("rho signs", func(t *testing.T) {
		callGreeks, err := BlackScholesGreeks(call)
		assert.NoError(t, err)
		assert.Greater(t, callGreeks.Rho, 0.0)

		putGreeks, err := BlackScholesGreeks(put)
		assert.NoError(t, err)
		assert.Less(t, putGreeks.Rho, 0.0)
	})

	t.Run("american contract is rejected", func(t *testing.T) {
		american := call
		american.ExerciseStyle = models.American

		_, err := BlackScholesGreeks(american)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

func TestExpectedReturn(t *testing.T) {
	call := newContract(t, 100, 90, 1, 0.2, 0.05, 0, models.Call, models.European)

	t.Run("risk free underlying earns the risk free rate", func(t *testing.T) {
		expected, err := ExpectedReturn(call, 0.05)
		assert.NoError(t, err)
		assert.InDelta(t, 0.05, expected, 1e-12)
	})

	t.Run("calls lever the excess return of the underlying", func(t *testing.T) {
		expected, err := ExpectedReturn(call, 0.10)
		assert.NoError(t, err)
		assert.Greater(t, expected, 0.10)
	})

	t.Run("omega is finite for deep out of the money strikes", func(t *testing.T) {
		otm := newContract(t, 100, 200, 0.25, 0.2, 0.05, 0, models.Call, models.European)

		expected, err := ExpectedReturn(otm, 0.10)
		assert.NoError(t, err)
		assert.False(t, math.IsNaN(expected))
		assert.False(t, math.IsInf(expected, 0))
	})
}

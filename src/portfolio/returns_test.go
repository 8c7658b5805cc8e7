package portfolio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-lab/src/models"
)

func TestDailyReturns(t *testing.T) {
	t.Run("simple returns", func(t *testing.T) {
		returns, err := DailyReturns([]float64{100, 110, 99})
		assert.NoError(t, err)
		assert.Len(t, returns, 2)
		assert.InDelta(t, 0.10, returns[0], 1e-12)
		assert.InDelta(t, -0.10, returns[1], 1e-12)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := DailyReturns([]float64{100})
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("non-positive close", func(t *testing.T) {
		_, err := DailyReturns([]float64{100, 0, 110})
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

func TestLogReturns(t *testing.T) {
	t.Run("log returns", func(t *testing.T) {
		returns, err := LogReturns([]float64{100, 110})
		assert.NoError(t, err)
		assert.Len(t, returns, 1)
		assert.InDelta(t, math.Log(1.1), returns[0], 1e-12)
	})

	t.Run("non-positive close", func(t *testing.T) {
		_, err := LogReturns([]float64{100, -1})
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

func TestAnnualizedReturn(t *testing.T) {
	t.Run("flat series has zero annualized return", func(t *testing.T) {
		closes := make([]float64, 300)
		for i := range closes {
			closes[i] = 100
		}

		annualized, err := AnnualizedReturn(closes)
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, annualized, 1e-12)
	})

	t.Run("steady growth compounds", func(t *testing.T) {
		// constant daily growth g annualizes to g^252 - 1
		g := 1.0005
		closes := make([]float64, 252)
		closes[0] = 100
		for i := 1; i < len(closes); i++ {
			closes[i] = closes[i-1] * g
		}

		annualized, err := AnnualizedReturn(closes)
		assert.NoError(t, err)

		totalGrowth := closes[len(closes)-1] / closes[0]
		expected := math.Pow(totalGrowth, float64(tradingDays)/float64(len(closes))) - 1
		assert.InDelta(t, expected, annualized, 1e-12)
		assert.Greater(t, annualized, 0.0)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := AnnualizedReturn([]float64{100})
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

func TestAnnualizedVolatility(t *testing.T) {
	t.Run("flat series has zero volatility", func(t *testing.T) {
		vols, err := AnnualizedVolatility([]float64{100, 100, 100, 100, 100}, 3)
		assert.NoError(t, err)
		assert.Len(t, vols, 5)
		assert.Equal(t, 0.0, vols[len(vols)-1])
	})

	t.Run("series shorter than the window", func(t *testing.T) {
		_, err := AnnualizedVolatility([]float64{100, 101}, 5)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("window below 2", func(t *testing.T) {
		_, err := AnnualizedVolatility([]float64{100, 101, 102}, 1)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("entries before the first full window are zero", func(t *testing.T) {
		vols, err := AnnualizedVolatility([]float64{100, 105, 95, 103, 99}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, vols[0])
		assert.Equal(t, 0.0, vols[1])
		assert.Greater(t, vols[2], 0.0)
		assert.Greater(t, vols[len(vols)-1], 0.0)
	})
}

func TestSharpeRatio(t *testing.T) {
	t.Run("known series at zero rate", func(t *testing.T) {
		// mean 0.02, sample std 0.01
		sharpe, err := SharpeRatio([]float64{0.01, 0.02, 0.03}, ConstantRate(0, 3))
		assert.NoError(t, err)
		assert.InDelta(t, 2*math.Sqrt(tradingDays), sharpe, 1e-9)
	})

	t.Run("higher rate lowers the ratio", func(t *testing.T) {
		returns := []float64{0.01, 0.02, 0.03, 0.015, 0.025}

		atZero, err := SharpeRatio(returns, ConstantRate(0, len(returns)))
		assert.NoError(t, err)

		atFive, err := SharpeRatio(returns, ConstantRate(5.0, len(returns)))
		assert.NoError(t, err)

		assert.Less(t, atFive, atZero)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := SharpeRatio([]float64{0.01, 0.02}, ConstantRate(0, 3))
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("zero variance", func(t *testing.T) {
		_, err := SharpeRatio([]float64{0.01, 0.01, 0.01}, ConstantRate(0, 3))
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-lab/src/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func candlesAt(closes map[int]float64) models.Candles {
	var candles models.Candles
	for d, c := range closes {
		candles = append(candles, &models.Candle{Timestamp: day(d), Close: c})
	}

	return models.SortCandles(candles)
}

func TestAlignCloses(t *testing.T) {
	t.Run("intersects on shared dates", func(t *testing.T) {
		aligned, err := AlignCloses([]NamedCandles{
			{Name: "AAPL", Candles: candlesAt(map[int]float64{2: 100, 3: 101, 4: 102, 5: 103})},
			{Name: "MSFT", Candles: candlesAt(map[int]float64{3: 300, 4: 301, 5: 302, 8: 303})},
		})
		assert.NoError(t, err)
		assert.Len(t, aligned, 2)

		assert.Equal(t, "AAPL", aligned[0].Name)
		assert.Equal(t, []float64{101, 102, 103}, aligned[0].Values)

		assert.Equal(t, "MSFT", aligned[1].Name)
		assert.Equal(t, []float64{300, 301, 302}, aligned[1].Values)
	})

	t.Run("no series", func(t *testing.T) {
		_, err := AlignCloses(nil)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("insufficient overlap", func(t *testing.T) {
		_, err := AlignCloses([]NamedCandles{
			{Name: "AAPL", Candles: candlesAt(map[int]float64{2: 100, 3: 101})},
			{Name: "MSFT", Candles: candlesAt(map[int]float64{3: 300, 4: 301})},
		})
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}

package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-lab/src/models"
)

// TradingDays is the annualization basis for daily series.
const TradingDays = 252

// HistoricVolatility estimates annualized volatility from the sample
// standard deviation of daily log returns over a trailing window.
type HistoricVolatility struct {
	Window    int
	lastClose float64
	returns   []float64
}

func NewHistoricVolatility(window int) (*HistoricVolatility, error) {
	if window < 2 {
		return nil, fmt.Errorf("NewHistoricVolatility: window must be at least 2, got %v: %w", window, models.InvalidInputErr)
	}

	return &HistoricVolatility{Window: window}, nil
}

// Update feeds one candle. It reports false until a full window of log
// returns has been observed.
func (h *HistoricVolatility) Update(c models.Candle) (bool, float64, error) {
	if c.Close <= 0 {
		return false, 0, fmt.Errorf("HistoricVolatility: Update: close must be positive, got %v: %w", c.Close, models.InvalidInputErr)
	}

	if h.lastClose == 0 {
		h.lastClose = c.Close
		return false, 0, nil
	}

	ret := math.Log(c.Close / h.lastClose)
	h.lastClose = c.Close

	if len(h.returns) < h.Window {
		h.returns = append(h.returns, ret)
		if len(h.returns) < h.Window {
			return false, 0, nil
		}
	} else {
		h.returns = append(h.returns[1:], ret)
	}

	sd, err := stats.StandardDeviationSample(h.returns)
	if err != nil {
		return false, 0, fmt.Errorf("HistoricVolatility: Update: failed to calculate the standard deviation: %v", err)
	}

	return true, sd * math.Sqrt(TradingDays), nil
}

// LatestHistoricVolatility runs the estimator over a candle series and
// returns the most recent annualized value.
func LatestHistoricVolatility(candles models.Candles, window int) (float64, error) {
	h, err := NewHistoricVolatility(window)
	if err != nil {
		return 0, fmt.Errorf("LatestHistoricVolatility: %w", err)
	}

	var latest float64
	ready := false

	for _, c := range candles {
		ok, vol, err := h.Update(*c)
		if err != nil {
			return 0, fmt.Errorf("LatestHistoricVolatility: %w", err)
		}

		if ok {
			latest = vol
			ready = true
		}
	}

	if !ready {
		return 0, fmt.Errorf("LatestHistoricVolatility: need at least %d candles, got %d: %w", window+1, len(candles), models.InvalidInputErr)
	}

	return latest, nil
}

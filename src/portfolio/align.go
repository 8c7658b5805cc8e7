package portfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/jiaming2012/options-lab/src/models"
)

type NamedCandles struct {
	Name    string
	Candles models.Candles
}

// AlignCloses intersects candle series on their timestamps so every name
// contributes a close for every shared date, in chronological order. Series
// loaded from different files rarely cover identical date ranges.
func AlignCloses(series []NamedCandles) ([]NamedSeries, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("AlignCloses: no series given: %w", models.InvalidInputErr)
	}

	counts := make(map[time.Time]int)
	for _, s := range series {
		seen := make(map[time.Time]bool)
		for _, c := range s.Candles {
			if !seen[c.Timestamp] {
				seen[c.Timestamp] = true
				counts[c.Timestamp]++
			}
		}
	}

	var shared []time.Time
	for timestamp, count := range counts {
		if count == len(series) {
			shared = append(shared, timestamp)
		}
	}

	if len(shared) < 2 {
		return nil, fmt.Errorf("AlignCloses: only %d timestamps are shared by all %d series: %w", len(shared), len(series), models.InvalidInputErr)
	}

	sort.Slice(shared, func(i, j int) bool {
		return shared[i].Before(shared[j])
	})

	out := make([]NamedSeries, 0, len(series))
	for _, s := range series {
		closeByTime := make(map[time.Time]float64)
		for _, c := range s.Candles {
			closeByTime[c.Timestamp] = c.Close
		}

		values := make([]float64, 0, len(shared))
		for _, timestamp := range shared {
			values = append(values, closeByTime[timestamp])
		}

		out = append(out, NamedSeries{Name: s.Name, Values: values})
	}

	return out, nil
}

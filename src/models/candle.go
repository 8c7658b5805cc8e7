package models

import (
	"sort"
	"time"
)

type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

type Candles []*Candle

func (c Candles) Closes() []float64 {
	closes := make([]float64, 0, len(c))
	for _, candle := range c {
		closes = append(closes, candle.Close)
	}

	return closes
}

func SortCandles(candles Candles) Candles {
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Timestamp.Before(candles[j].Timestamp)
	})

	return candles
}

package models

import (
	"fmt"
	"math"
	"time"
)

type OptionChainTick struct {
	Symbol     OptionSymbol
	Underlying string
	Expiration time.Time
	Strike     float64
	OptionType OptionType
	Bid        float64
	Ask        float64
}

// MidPrice is the market premium estimate used for implied volatility.
func (t *OptionChainTick) MidPrice() float64 {
	return math.Abs(t.Bid+t.Ask) / 2.0
}

func (t *OptionChainTick) Validate() error {
	if t.Strike <= 0 {
		return fmt.Errorf("OptionChainTick: Validate: strike must be positive, got %v: %w", t.Strike, InvalidInputErr)
	}

	if t.Bid < 0 {
		return fmt.Errorf("OptionChainTick: Validate: bid must be non-negative, got %v: %w", t.Bid, InvalidInputErr)
	}

	if t.Ask < 0 {
		return fmt.Errorf("OptionChainTick: Validate: ask must be non-negative, got %v: %w", t.Ask, InvalidInputErr)
	}

	if err := t.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionChainTick: Validate: %w", err)
	}

	return nil
}

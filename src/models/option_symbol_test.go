package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionSymbol(t *testing.T) {
	t.Run("build and parse round trip", func(t *testing.T) {
		components := OptionSymbolComponents{
			Underlying:  "AAPL",
			Expiration:  time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
			OptionType:  "C",
			StrikePrice: 217.5,
		}

		symbol, err := NewOptionSymbol(components)
		assert.NoError(t, err)
		assert.Equal(t, OptionSymbol("AAPL240920C00217500"), symbol)

		parsed, err := NewOptionSymbolComponents(symbol)
		assert.NoError(t, err)
		assert.Equal(t, "AAPL", parsed.Underlying)
		assert.Equal(t, components.Expiration, parsed.Expiration)
		assert.Equal(t, "C", parsed.OptionType)
		assert.Equal(t, 217.5, parsed.StrikePrice)
	})

	t.Run("invalid option type", func(t *testing.T) {
		_, err := NewOptionSymbol(OptionSymbolComponents{
			Underlying:  "AAPL",
			Expiration:  time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
			OptionType:  "X",
			StrikePrice: 100,
		})
		assert.Error(t, err)
	})
}

func TestNewOptionSymbolComponents(t *testing.T) {
	t.Run("put symbol", func(t *testing.T) {
		parsed, err := NewOptionSymbolComponents("SPX240621P04800000")
		assert.NoError(t, err)
		assert.Equal(t, "SPX", parsed.Underlying)
		assert.Equal(t, "P", parsed.OptionType)
		assert.Equal(t, 4800.0, parsed.StrikePrice)
		assert.Equal(t, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), parsed.Expiration)
	})

	t.Run("tolerates the polygon prefix", func(t *testing.T) {
		parsed, err := NewOptionSymbolComponents("O:COIN240621C00150000")
		assert.NoError(t, err)
		assert.Equal(t, "COIN", parsed.Underlying)
		assert.Equal(t, 150.0, parsed.StrikePrice)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := NewOptionSymbolComponents("AAPL240920C")
		assert.Error(t, err)
	})

	t.Run("invalid type letter", func(t *testing.T) {
		_, err := NewOptionSymbolComponents("AAPL240920X00217500")
		assert.Error(t, err)
	})

	t.Run("non alphabetic underlying", func(t *testing.T) {
		_, err := NewOptionSymbolComponents("AA1L240920C00217500")
		assert.Error(t, err)
	})
}

func TestOptionSymbolDescription(t *testing.T) {
	description, err := OptionSymbol("AAPL240920C00217500").Description()
	assert.NoError(t, err)
	assert.Equal(t, "AAPL Sep 20 2024 $217.50 Call", description)
}

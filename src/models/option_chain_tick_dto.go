package models

import (
	"fmt"
	"strconv"
	"time"
)

type OptionChainTickDTO struct {
	Symbol     string `csv:"symbol" json:"symbol"`
	Underlying string `csv:"underlying" json:"underlying"`
	Expiration string `csv:"expiration" json:"expiration"`
	Strike     string `csv:"strike" json:"strike"`
	OptionType string `csv:"type" json:"type"`
	Bid        string `csv:"bid" json:"bid"`
	Ask        string `csv:"ask" json:"ask"`
}

// ToModel converts a raw chain row. Rows that carry only an OCC symbol get
// their underlying, expiration, strike and type filled in from the symbol.
func (dto *OptionChainTickDTO) ToModel() (*OptionChainTick, error) {
	tick := &OptionChainTick{
		Symbol:     OptionSymbol(dto.Symbol),
		Underlying: dto.Underlying,
	}

	if dto.Symbol != "" && (dto.Underlying == "" || dto.Expiration == "" || dto.Strike == "" || dto.OptionType == "") {
		components, err := NewOptionSymbolComponents(OptionSymbol(dto.Symbol))
		if err != nil {
			return nil, fmt.Errorf("OptionChainTickDTO: ToModel: %w", err)
		}

		tick.Underlying = components.Underlying
		tick.Expiration = components.Expiration
		tick.Strike = components.StrikePrice

		if components.OptionType == "C" {
			tick.OptionType = Call
		} else {
			tick.OptionType = Put
		}
	} else {
		expiration, err := time.Parse("2006-01-02", dto.Expiration)
		if err != nil {
			return nil, fmt.Errorf("OptionChainTickDTO: ToModel: error parsing expiration %s: %v", dto.Expiration, err)
		}

		strike, err := strconv.ParseFloat(dto.Strike, 64)
		if err != nil {
			return nil, fmt.Errorf("OptionChainTickDTO: ToModel: error parsing strike: %v", err)
		}

		tick.Expiration = expiration
		tick.Strike = strike
		tick.OptionType = OptionType(dto.OptionType)
	}

	bid, err := strconv.ParseFloat(dto.Bid, 64)
	if err != nil {
		return nil, fmt.Errorf("OptionChainTickDTO: ToModel: error parsing bid: %v", err)
	}

	ask, err := strconv.ParseFloat(dto.Ask, 64)
	if err != nil {
		return nil, fmt.Errorf("OptionChainTickDTO: ToModel: error parsing ask: %v", err)
	}

	tick.Bid = bid
	tick.Ask = ask

	if err := tick.Validate(); err != nil {
		return nil, fmt.Errorf("OptionChainTickDTO: ToModel: %w", err)
	}

	return tick, nil
}

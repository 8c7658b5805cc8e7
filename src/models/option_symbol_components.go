package models

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
)

// OptionSymbolComponents holds the parsed parts of an OCC option symbol.
// OptionType is the single letter form, C or P.
type OptionSymbolComponents struct {
	Underlying  string
	Expiration  time.Time
	OptionType  string
	StrikePrice float64
	Symbol      OptionSymbol
}

func NewOptionSymbolComponents(symbol OptionSymbol) (*OptionSymbolComponents, error) {
	ticker := symbol.NoPrefix()

	// underlying + yymmdd + C|P + 8 digit strike
	if len(ticker) < 16 {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %s is too short", symbol)
	}

	strikePart := ticker[len(ticker)-8:]
	typePart := ticker[len(ticker)-9 : len(ticker)-8]
	datePart := ticker[len(ticker)-15 : len(ticker)-9]
	underlying := ticker[:len(ticker)-15]

	if underlying == "" {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %s has no underlying", symbol)
	}

	for _, r := range underlying {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("NewOptionSymbolComponents: invalid underlying %s in symbol %s", underlying, symbol)
		}
	}

	if typePart != "C" && typePart != "P" {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid option type %s in symbol %s", typePart, symbol)
	}

	expiration, err := time.Parse("060102", datePart)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse expiration %s in symbol %s: %v", datePart, symbol, err)
	}

	strikeScaled, err := strconv.Atoi(strikePart)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse strike %s in symbol %s: %v", strikePart, symbol, err)
	}

	return &OptionSymbolComponents{
		Underlying:  underlying,
		Expiration:  expiration,
		OptionType:  typePart,
		StrikePrice: float64(strikeScaled) / 1000.0,
		Symbol:      OptionSymbol(ticker),
	}, nil
}

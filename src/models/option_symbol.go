package models

import (
	"fmt"
	"strings"
)

type OptionSymbol string

func (s OptionSymbol) NoPrefix() string {
	if strings.HasPrefix(string(s), "O:") {
		return string(s)[2:]
	}

	return string(s)
}

func (s OptionSymbol) Description() (string, error) {
	components, err := NewOptionSymbolComponents(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	expiration := components.Expiration.Format("Jan 2 2006")
	strikePrice := fmt.Sprintf("%.2f", components.StrikePrice)

	optionType := "Call"
	if components.OptionType == "P" {
		optionType = "Put"
	}

	formatted := fmt.Sprintf("%s %s $%s %s", components.Underlying, expiration, strikePrice, optionType)

	return formatted, nil
}

func NewOptionSymbol(option OptionSymbolComponents) (OptionSymbol, error) {
	if option.OptionType != "C" && option.OptionType != "P" {
		return "", fmt.Errorf("NewOptionSymbol: invalid option type: %s", option.OptionType)
	}

	year := option.Expiration.Year() % 100
	month := int(option.Expiration.Month())
	day := option.Expiration.Day()

	// OCC style: strike scaled by 1000 and zero-padded to 8 digits
	strikePrice := fmt.Sprintf("%08d", int(option.StrikePrice*1000))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		option.Underlying, year, month, day, option.OptionType, strikePrice)

	return OptionSymbol(ticker), nil
}

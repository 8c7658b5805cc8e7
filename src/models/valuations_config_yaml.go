package models

import (
	"fmt"
	"strings"
)

type ValuationsConfigYAML struct {
	Valuations []ValuationYAML `yaml:"valuations"`
}

func (c *ValuationsConfigYAML) GetValuation(symbol string) (*ValuationYAML, error) {
	sym1 := strings.ToLower(symbol)
	for _, valuation := range c.Valuations {
		sym2 := strings.ToLower(valuation.Symbol)
		if sym1 == sym2 {
			return &valuation, nil
		}
	}

	return nil, fmt.Errorf("ValuationsConfigYAML: valuation for %s: %w", symbol, SymbolNotFoundErr)
}

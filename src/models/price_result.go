package models

// PriceResult is the output of a single valuation. Value is always
// non-negative for valid inputs.
type PriceResult struct {
	Value float64
}

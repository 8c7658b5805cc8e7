package models

// EnrichedOptionTick is one output row of a chain enrichment run. Model
// prices are computed twice, once under the historic volatility of the
// underlying and once under the implied volatility backed out of the mid.
type EnrichedOptionTick struct {
	Symbol            string  `csv:"symbol"`
	Underlying        string  `csv:"underlying"`
	Expiration        string  `csv:"expiration"`
	OptionType        string  `csv:"type"`
	Strike            float64 `csv:"strike"`
	Bid               float64 `csv:"bid"`
	Ask               float64 `csv:"ask"`
	Mid               float64 `csv:"mid"`
	TimeToExpiryDays  float64 `csv:"ttm_days"`
	HistVolatility    float64 `csv:"hist_vol"`
	ImpliedVolatility float64 `csv:"implied_vol"`
	BsPriceHist       float64 `csv:"bs_price_hist"`
	BsPriceImplied    float64 `csv:"bs_price_implied"`
	BopmPriceHist     float64 `csv:"bopm_price_hist"`
	BopmPriceImplied  float64 `csv:"bopm_price_implied"`
	Delta             float64 `csv:"delta"`
	Gamma             float64 `csv:"gamma"`
	Vega              float64 `csv:"vega"`
	Theta             float64 `csv:"theta"`
	Rho               float64 `csv:"rho"`
	ProbOfProfit      float64 `csv:"prob_of_profit"`
	ProbITM           float64 `csv:"prob_itm"`
	ExpectedReturn    float64 `csv:"expected_return"`
}

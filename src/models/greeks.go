package models

// Greeks are the first-order sensitivities of an option price. Theta is per
// year and vega is per unit of volatility.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

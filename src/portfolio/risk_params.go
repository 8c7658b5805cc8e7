package portfolio

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-lab/src/models"
)

type RiskParamsResult struct {
	Beta  float64
	Alpha float64
}

// RiskParams computes the beta of an asset against a market benchmark from
// daily return covariance, and its alpha as the annualized return in excess
// of the CAPM expectation at the mean risk-free rate.
func RiskParams(assetCloses, marketCloses []float64, annualRatesPct []float64) (RiskParamsResult, error) {
	if len(assetCloses) != len(marketCloses) {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: asset closes length %d does not match market closes length %d: %w", len(assetCloses), len(marketCloses), models.InvalidInputErr)
	}

	assetReturns, err := DailyReturns(assetCloses)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: asset returns: %w", err)
	}

	marketReturns, err := DailyReturns(marketCloses)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: market returns: %w", err)
	}

	covariance, err := stats.Covariance(assetReturns, marketReturns)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: failed to calculate covariance: %v", err)
	}

	marketVariance, err := stats.SampleVariance(marketReturns)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: failed to calculate market variance: %v", err)
	}

	if marketVariance == 0 {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: market returns have zero variance: %w", models.InvalidInputErr)
	}

	beta := covariance / marketVariance

	assetAnnualized, err := AnnualizedReturn(assetCloses)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: %w", err)
	}

	marketAnnualized, err := AnnualizedReturn(marketCloses)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: %w", err)
	}

	meanRatePct, err := stats.Mean(annualRatesPct)
	if err != nil {
		return RiskParamsResult{}, fmt.Errorf("RiskParams: failed to calculate mean risk-free rate: %v", err)
	}

	riskFree := meanRatePct / 100

	// actual return minus the CAPM expected return
	alpha := assetAnnualized - (riskFree + beta*(marketAnnualized-riskFree))

	return RiskParamsResult{
		Beta:  beta,
		Alpha: alpha,
	}, nil
}

package run

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/indicators"
	"github.com/jiaming2012/options-lab/src/marketdata"
	"github.com/jiaming2012/options-lab/src/models"
	"github.com/jiaming2012/options-lab/src/portfolio"
	"github.com/jiaming2012/options-lab/src/pricing"
)

type RunArgs struct {
	ChainPath     string
	CandlesPath   string
	RatesPath     string
	RatesFlavor   string
	Expiry        time.Time
	DividendYield float64
	VolWindow     int
	NumSteps      int
	OutDir        string
}

type RunResult struct {
	OutPath string
}

const ivInitialGuess = 0.5

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func enrichTick(tick *models.OptionChainTick, spot, timeToExpiry, histVol, rate, dividendYield, assetReturn float64, params models.LatticeParameters) (*models.EnrichedOptionTick, error) {
	contractHist, err := models.NewOptionContract(spot, tick.Strike, timeToExpiry, histVol, rate, dividendYield, tick.OptionType, models.European)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	mid := tick.MidPrice()
	if mid <= 0 {
		return nil, fmt.Errorf("enrichTick: mid price %v is not positive: %w", mid, models.InvalidInputErr)
	}

	impliedVol, err := pricing.ImpliedVolatility(contractHist, ivInitialGuess, mid)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	contractImplied := contractHist
	contractImplied.Volatility = impliedVol

	bsHist, err := pricing.BlackScholesPrice(contractHist)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	bsImplied, err := pricing.BlackScholesPrice(contractImplied)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	bopmHist, err := pricing.BinomialPrice(contractHist, params)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	bopmImplied, err := pricing.BinomialPrice(contractImplied, params)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	greeks, err := pricing.BlackScholesGreeks(contractImplied)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	probabilities, err := pricing.BlackScholesProbabilities(contractImplied)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	expectedReturn, err := pricing.ExpectedReturn(contractImplied, assetReturn)
	if err != nil {
		return nil, fmt.Errorf("enrichTick: %w", err)
	}

	return &models.EnrichedOptionTick{
		Symbol:            string(tick.Symbol),
		Underlying:        tick.Underlying,
		Expiration:        tick.Expiration.Format("2006-01-02"),
		OptionType:        string(tick.OptionType),
		Strike:            tick.Strike,
		Bid:               tick.Bid,
		Ask:               tick.Ask,
		Mid:               mid,
		TimeToExpiryDays:  timeToExpiry * 365,
		HistVolatility:    histVol,
		ImpliedVolatility: impliedVol,
		BsPriceHist:       bsHist.Value,
		BsPriceImplied:    bsImplied.Value,
		BopmPriceHist:     bopmHist.Value,
		BopmPriceImplied:  bopmImplied.Value,
		Delta:             greeks.Delta,
		Gamma:             greeks.Gamma,
		Vega:              greeks.Vega,
		Theta:             greeks.Theta,
		Rho:               greeks.Rho,
		ProbOfProfit:      probabilities.ProbOfProfit,
		ProbITM:           probabilities.ProbITM,
		ExpectedReturn:    expectedReturn,
	}, nil
}

// Run loads an option chain with its underlying candles and a central bank
// rate series, then prices every contract of the requested expiry under
// both historic and implied volatility and exports the enriched rows.
func Run(args RunArgs) (RunResult, error) {
	candles, err := marketdata.ImportCandles(args.CandlesPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if len(candles) == 0 {
		return RunResult{}, fmt.Errorf("Run: no candles in %s: %w", args.CandlesPath, models.InvalidInputErr)
	}

	lastCandle := candles[len(candles)-1]
	spot := lastCandle.Close
	valuationDate := lastCandle.Timestamp

	histVol, err := indicators.LatestHistoricVolatility(candles, args.VolWindow)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	assetReturn, err := portfolio.AnnualizedReturn(candles.Closes())
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	rates, err := marketdata.ImportRiskFreeRates(args.RatesPath, marketdata.RateFlavor(args.RatesFlavor))
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	ratePct, err := marketdata.LatestRateOnOrBefore(rates, valuationDate)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	rate := ratePct / 100

	timeToExpiry := args.Expiry.Sub(valuationDate).Hours() / 24 / 365
	if timeToExpiry <= 0 {
		return RunResult{}, fmt.Errorf("Run: expiry %s is not after the last candle %s: %w", args.Expiry.Format("2006-01-02"), valuationDate.Format("2006-01-02"), models.InvalidInputErr)
	}

	params, err := models.NewLatticeParameters(args.NumSteps)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	ticks, err := marketdata.ImportOptionChain(args.ChainPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	log.Infof("Valuing chain at %s: spot %.2f, historic vol %.4f, rate %.2f%%, asset return %.4f", valuationDate.Format("2006-01-02"), spot, histVol, ratePct, assetReturn)

	var underlying string
	var enriched []*models.EnrichedOptionTick

	for _, tick := range ticks {
		if !sameDay(tick.Expiration, args.Expiry) {
			continue
		}

		row, err := enrichTick(tick, spot, timeToExpiry, histVol, rate, args.DividendYield, assetReturn, params)
		if err != nil {
			if errors.Is(err, models.NoConvergenceErr) || errors.Is(err, models.InvalidInputErr) {
				log.Warnf("Run: skipping %s strike %.2f: %v", tick.OptionType, tick.Strike, err)
				continue
			}

			return RunResult{}, fmt.Errorf("Run: %w", err)
		}

		underlying = tick.Underlying
		enriched = append(enriched, row)
	}

	if len(enriched) == 0 {
		return RunResult{}, fmt.Errorf("Run: no contracts expiring %s in %s", args.Expiry.Format("2006-01-02"), args.ChainPath)
	}

	prefix := fmt.Sprintf("%s-%s", underlying, args.Expiry.Format("2006-01-02"))
	outPath, err := marketdata.ExportEnrichedChain(args.OutDir, prefix, enriched)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	return RunResult{OutPath: outPath}, nil
}

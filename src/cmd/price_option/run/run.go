package run

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/options-lab/src/models"
	"github.com/jiaming2012/options-lab/src/pricing"
)

type RunArgs struct {
	ConfigPath    string
	Symbol        string
	Spot          float64
	Strike        float64
	TimeToExpiry  float64
	Volatility    float64
	RiskFreeRate  float64
	DividendYield float64
	OptionType    string
	ExerciseStyle string
	NumSteps      int
}

type RunResult struct {
	Report models.ValuationReport
}

func loadValuations(args RunArgs) ([]models.ValuationYAML, error) {
	if args.ConfigPath == "" {
		symbol := args.Symbol
		if symbol == "" {
			symbol = "MANUAL"
		}

		return []models.ValuationYAML{
			{
				Symbol:        symbol,
				Spot:          args.Spot,
				Strike:        args.Strike,
				TimeToExpiry:  args.TimeToExpiry,
				Volatility:    args.Volatility,
				RiskFreeRate:  args.RiskFreeRate,
				DividendYield: args.DividendYield,
				OptionType:    args.OptionType,
				ExerciseStyle: args.ExerciseStyle,
				NumSteps:      args.NumSteps,
			},
		}, nil
	}

	data, err := os.ReadFile(args.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loadValuations: failed to read %s: %v", args.ConfigPath, err)
	}

	var config models.ValuationsConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("loadValuations: failed to unmarshal %s: %v", args.ConfigPath, err)
	}

	if args.Symbol != "" {
		valuation, err := config.GetValuation(args.Symbol)
		if err != nil {
			return nil, fmt.Errorf("loadValuations: %w", err)
		}

		return []models.ValuationYAML{*valuation}, nil
	}

	if len(config.Valuations) == 0 {
		return nil, fmt.Errorf("loadValuations: %s contains no valuations", args.ConfigPath)
	}

	return config.Valuations, nil
}

// Run values each requested contract on the lattice and, for european
// exercise, also closed-form with greeks and profit probabilities.
func Run(args RunArgs) (RunResult, error) {
	valuations, err := loadValuations(args)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	var report models.ValuationReport

	for _, valuation := range valuations {
		contract, err := valuation.ToContract()
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
		}

		params, err := valuation.ToLatticeParameters()
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
		}

		bopmPrice, err := pricing.BinomialPrice(contract, params)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
		}

		row := models.ValuationReportRow{
			Symbol:        valuation.Symbol,
			OptionType:    contract.OptionType,
			ExerciseStyle: contract.ExerciseStyle,
			BopmPrice:     bopmPrice.Value,
		}

		if contract.ExerciseStyle == models.European {
			bsPrice, err := pricing.BlackScholesPrice(contract)
			if err != nil {
				return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
			}

			greeks, err := pricing.BlackScholesGreeks(contract)
			if err != nil {
				return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
			}

			probabilities, err := pricing.BlackScholesProbabilities(contract)
			if err != nil {
				return RunResult{}, fmt.Errorf("Run: %s: %w", valuation.Symbol, err)
			}

			row.BsPrice = &bsPrice.Value
			row.Greeks = &greeks
			row.ProbOfProfit = &probabilities.ProbOfProfit
			row.ProbITM = &probabilities.ProbITM
		}

		report.Rows = append(report.Rows, row)
	}

	return RunResult{Report: report}, nil
}

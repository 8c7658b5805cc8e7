package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-lab/src/cmd/price_option/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/price_option/main.go --spot 100 --strike 90 --expiry-years 1 --vol 0.2 --rate 0.05",
	Short: "Value option contracts with the Black-Scholes and binomial lattice models",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		expiryYears, err := cmd.Flags().GetFloat64("expiry-years")
		if err != nil {
			log.Fatalf("error getting expiry-years: %v", err)
		}

		volatility, err := cmd.Flags().GetFloat64("vol")
		if err != nil {
			log.Fatalf("error getting vol: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		dividend, err := cmd.Flags().GetFloat64("dividend")
		if err != nil {
			log.Fatalf("error getting dividend: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		exerciseStyle, err := cmd.Flags().GetString("style")
		if err != nil {
			log.Fatalf("error getting style: %v", err)
		}

		numSteps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			log.Fatalf("error getting steps: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			ConfigPath:    configPath,
			Symbol:        symbol,
			Spot:          spot,
			Strike:        strike,
			TimeToExpiry:  expiryYears,
			Volatility:    volatility,
			RiskFreeRate:  rate,
			DividendYield: dividend,
			OptionType:    optionType,
			ExerciseStyle: exerciseStyle,
			NumSteps:      numSteps,
		})

		if err != nil {
			log.Fatalf("error running command: %v", err)
		}

		fmt.Print(result.Report.String())
	},
}

func main() {
	runCmd.PersistentFlags().String("config", "", "Path to a valuations yaml file. When set, the individual contract flags are ignored.")
	runCmd.PersistentFlags().String("symbol", "", "Label for the contract, or the single valuation to pick out of the yaml config.")
	runCmd.PersistentFlags().Float64("spot", 0, "Current price of the underlying.")
	runCmd.PersistentFlags().Float64("strike", 0, "Strike price of the contract.")
	runCmd.PersistentFlags().Float64("expiry-years", 0, "Time to expiry in years.")
	runCmd.PersistentFlags().Float64("vol", 0, "Annualized volatility of the underlying.")
	runCmd.PersistentFlags().Float64("rate", 0, "Annualized risk-free rate, e.g. 0.05.")
	runCmd.PersistentFlags().Float64("dividend", 0, "Continuous dividend yield of the underlying.")
	runCmd.PersistentFlags().String("type", "call", "Option type: call or put.")
	runCmd.PersistentFlags().String("style", "european", "Exercise style: european or american.")
	runCmd.PersistentFlags().Int("steps", 100, "Number of time steps in the binomial lattice.")

	runCmd.Execute()
}

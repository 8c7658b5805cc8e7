package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-lab/src/cmd/analyze_portfolio/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/analyze_portfolio/main.go --positions AAPL=aapl.csv,MSFT=msft.csv --market spy.csv --rate 5.0",
	Short: "Compute risk/return metrics and the correlation matrix of a set of positions",
	Run: func(cmd *cobra.Command, args []string) {
		positions, err := cmd.Flags().GetStringSlice("positions")
		if err != nil {
			log.Fatalf("error getting positions: %v", err)
		}

		marketSymbol, err := cmd.Flags().GetString("market-symbol")
		if err != nil {
			log.Fatalf("error getting market-symbol: %v", err)
		}

		marketPath, err := cmd.Flags().GetString("market")
		if err != nil {
			log.Fatalf("error getting market: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		volWindow, err := cmd.Flags().GetInt("vol-window")
		if err != nil {
			log.Fatalf("error getting vol-window: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			Positions:     positions,
			MarketSymbol:  marketSymbol,
			MarketPath:    marketPath,
			AnnualRatePct: rate,
			VolWindow:     volWindow,
		})

		if err != nil {
			log.Fatalf("error running command: %v", err)
		}

		fmt.Print(result.Stats.String())
		fmt.Print(result.Correlation.String())
	},
}

func main() {
	runCmd.PersistentFlags().StringSlice("positions", []string{}, "Positions as SYMBOL=path.csv pairs, e.g. AAPL=aapl.csv,MSFT=msft.csv. This flag is required.")
	runCmd.PersistentFlags().String("market-symbol", "SPY", "Label for the market benchmark.")
	runCmd.PersistentFlags().String("market", "", "Path to the market benchmark daily candles csv. This flag is required.")
	runCmd.PersistentFlags().Float64("rate", 0, "Annual risk-free rate in percent, e.g. 5.0.")
	runCmd.PersistentFlags().Int("vol-window", 21, "Trailing window of daily log returns for the rolling volatility estimate.")

	runCmd.MarkPersistentFlagRequired("positions")
	runCmd.MarkPersistentFlagRequired("market")

	runCmd.Execute()
}

package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-lab/src/cmd/enrich_chain/run"
	"github.com/jiaming2012/options-lab/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/enrich_chain/main.go --chain chain.csv --candles underlying.csv --rates fed.csv --expiry 2024-09-20 --outDir out",
	Short: "Enrich an option chain csv with model prices, implied vol, greeks and profit probabilities",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if projectsDir := os.Getenv("PROJECTS_DIR"); projectsDir != "" {
			if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
				log.Fatalf("error loading environment variables: %v", err)
			}
		}

		chainPath, err := cmd.Flags().GetString("chain")
		if err != nil {
			log.Fatalf("error getting chain: %v", err)
		}

		candlesPath, err := cmd.Flags().GetString("candles")
		if err != nil {
			log.Fatalf("error getting candles: %v", err)
		}

		ratesPath, err := cmd.Flags().GetString("rates")
		if err != nil {
			log.Fatalf("error getting rates: %v", err)
		}

		ratesFlavor, err := cmd.Flags().GetString("rates-flavor")
		if err != nil {
			log.Fatalf("error getting rates-flavor: %v", err)
		}

		expiryStr, err := cmd.Flags().GetString("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		expiry, err := time.Parse("2006-01-02", expiryStr)
		if err != nil {
			log.Fatalf("error parsing expiry: %v", err)
		}

		dividend, err := cmd.Flags().GetFloat64("dividend")
		if err != nil {
			log.Fatalf("error getting dividend: %v", err)
		}

		volWindow, err := cmd.Flags().GetInt("vol-window")
		if err != nil {
			log.Fatalf("error getting vol-window: %v", err)
		}

		numSteps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			log.Fatalf("error getting steps: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		if outDir == "" {
			outDir = os.Getenv("OPTIONS_LAB_OUT_DIR")
		}

		if outDir == "" {
			log.Fatalf("missing outDir: set the --outDir flag or the OPTIONS_LAB_OUT_DIR environment variable")
		}

		result, err := run.Run(run.RunArgs{
			ChainPath:     chainPath,
			CandlesPath:   candlesPath,
			RatesPath:     ratesPath,
			RatesFlavor:   ratesFlavor,
			Expiry:        expiry,
			DividendYield: dividend,
			VolWindow:     volWindow,
			NumSteps:      numSteps,
			OutDir:        outDir,
		})

		if err != nil {
			log.Fatalf("error running command: %v", err)
		}

		fmt.Printf("Enriched chain written to: %s\n", result.OutPath)
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("chain", "", "Path to the option chain csv. This flag is required.")
	runCmd.PersistentFlags().String("candles", "", "Path to the underlying daily candles csv. This flag is required.")
	runCmd.PersistentFlags().String("rates", "", "Path to the central bank rate series csv. This flag is required.")
	runCmd.PersistentFlags().String("rates-flavor", "fed", "Layout of the rate series: fed or ecb.")
	runCmd.PersistentFlags().String("expiry", "", "Expiration date to value, e.g. 2024-09-20. This flag is required.")
	runCmd.PersistentFlags().Float64("dividend", 0, "Continuous dividend yield of the underlying.")
	runCmd.PersistentFlags().Int("vol-window", 252, "Trailing window of daily log returns for the historic volatility estimate.")
	runCmd.PersistentFlags().Int("steps", 100, "Number of time steps in the binomial lattice.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the output to. Falls back to OPTIONS_LAB_OUT_DIR.")

	runCmd.MarkPersistentFlagRequired("chain")
	runCmd.MarkPersistentFlagRequired("candles")
	runCmd.MarkPersistentFlagRequired("rates")
	runCmd.MarkPersistentFlagRequired("expiry")

	runCmd.Execute()
}

package marketdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/models"
)

type RateFlavor string

const (
	FedRates RateFlavor = "fed"
	EcbRates RateFlavor = "ecb"
)

func (f RateFlavor) Validate() error {
	if f != FedRates && f != EcbRates {
		return fmt.Errorf("RateFlavor: Validate: invalid rate flavor %s: %w", f, models.InvalidInputErr)
	}

	return nil
}

// ImportRiskFreeRates loads a central bank rate series. The FED export is
// semicolon separated with decimal commas, the ECB export is a plain comma
// separated file. Rows with no published rate are skipped.
func ImportRiskFreeRates(path string, flavor RateFlavor) ([]*models.RiskFreeRate, error) {
	if err := flavor.Validate(); err != nil {
		return nil, fmt.Errorf("ImportRiskFreeRates: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ImportRiskFreeRates: error opening file: %v", err)
	}
	defer f.Close()

	var rates []*models.RiskFreeRate

	switch flavor {
	case FedRates:
		reader := csv.NewReader(f)
		reader.Comma = ';'

		var ratesDTO []*models.FedRateDTO
		if err := gocsv.UnmarshalCSV(reader, &ratesDTO); err != nil {
			return nil, fmt.Errorf("ImportRiskFreeRates: error unmarshalling %s: %v", path, err)
		}

		for _, dto := range ratesDTO {
			if dto.Rate == "" || dto.Rate == "." {
				log.Warnf("ImportRiskFreeRates: skipping %s, no rate published", dto.Date)
				continue
			}

			rate, err := dto.ToModel()
			if err != nil {
				return nil, fmt.Errorf("ImportRiskFreeRates: error converting to model: %w", err)
			}

			rates = append(rates, rate)
		}
	case EcbRates:
		var ratesDTO []*models.EcbRateDTO
		if err := gocsv.UnmarshalFile(f, &ratesDTO); err != nil {
			return nil, fmt.Errorf("ImportRiskFreeRates: error unmarshalling %s: %v", path, err)
		}

		for _, dto := range ratesDTO {
			if dto.MainRefinancingOpsRate == "" {
				log.Warnf("ImportRiskFreeRates: skipping %s, no rate published", dto.Date)
				continue
			}

			rate, err := dto.ToModel()
			if err != nil {
				return nil, fmt.Errorf("ImportRiskFreeRates: error converting to model: %w", err)
			}

			rates = append(rates, rate)
		}
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Date.Before(rates[j].Date)
	})

	log.Infof("Imported %d %s rates from %s", len(rates), flavor, path)

	return rates, nil
}

// LatestRateOnOrBefore returns the rate in force at the given date.
func LatestRateOnOrBefore(rates []*models.RiskFreeRate, date time.Time) (float64, error) {
	var latest *models.RiskFreeRate
	for _, rate := range rates {
		if rate.Date.After(date) {
			break
		}

		latest = rate
	}

	if latest == nil {
		return 0, fmt.Errorf("LatestRateOnOrBefore: no rate on or before %s: %w", date.Format("2006-01-02"), models.InvalidInputErr)
	}

	return latest.RatePct, nil
}

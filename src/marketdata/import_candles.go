package marketdata

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/models"
)

// ImportCandles loads a daily candle csv and returns the candles in
// chronological order.
func ImportCandles(path string) (models.Candles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ImportCandles: error opening file: %v", err)
	}
	defer f.Close()

	var candlesDTO []*models.CandleDTO
	if err := gocsv.UnmarshalFile(f, &candlesDTO); err != nil {
		return nil, fmt.Errorf("ImportCandles: error unmarshalling %s: %v", path, err)
	}

	var candles models.Candles
	for _, dto := range candlesDTO {
		c, err := dto.ToModel()
		if err != nil {
			return nil, fmt.Errorf("ImportCandles: error converting to model: %w", err)
		}

		candles = append(candles, c)
	}

	candles = models.SortCandles(candles)

	log.Infof("Imported %d candles from %s", len(candles), path)

	return candles, nil
}

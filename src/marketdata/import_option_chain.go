package marketdata

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/models"
)

// ImportOptionChain loads an option chain csv. Rows may carry either the
// full component columns or just an OCC symbol.
func ImportOptionChain(path string) ([]*models.OptionChainTick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ImportOptionChain: error opening file: %v", err)
	}
	defer f.Close()

	var ticksDTO []*models.OptionChainTickDTO
	if err := gocsv.UnmarshalFile(f, &ticksDTO); err != nil {
		return nil, fmt.Errorf("ImportOptionChain: error unmarshalling %s: %v", path, err)
	}

	var ticks []*models.OptionChainTick
	for _, dto := range ticksDTO {
		tick, err := dto.ToModel()
		if err != nil {
			return nil, fmt.Errorf("ImportOptionChain: error converting to model: %w", err)
		}

		ticks = append(ticks, tick)
	}

	log.Infof("Imported %d option chain ticks from %s", len(ticks), path)

	return ticks, nil
}

package marketdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-lab/src/models"
)

// ExportEnrichedChain writes enriched ticks to a uniquely named csv under
// outDir and returns the written path.
func ExportEnrichedChain(outDir, prefix string, ticks []*models.EnrichedOptionTick) (string, error) {
	if len(ticks) == 0 {
		return "", fmt.Errorf("ExportEnrichedChain: no ticks to export")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("ExportEnrichedChain: failed to create directory: %v", err)
	}

	filename := fmt.Sprintf("%s-%s.csv", prefix, uuid.New().String())
	outPath := filepath.Join(outDir, filename)

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("ExportEnrichedChain: error creating CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&ticks, file); err != nil {
		return "", fmt.Errorf("ExportEnrichedChain: error marshalling file: %v", err)
	}

	log.Infof("Exported %d enriched ticks to %s", len(ticks), outPath)

	return outPath, nil
}

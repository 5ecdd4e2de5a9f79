package dataset

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/openaquifer/groundwater-api/geo"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/store"
)

const importerLogPrefix = "importer"

const insertBatchSize = 1000

// Importer loads raw CGWB CSV exports into the sample store, backfilling the
// administrative area from coordinates when the columns are missing.
type Importer struct {
	samples  store.Sample
	resolver geo.LocationResolver
}

// NewImporter creates an importer. The resolver may be nil, in which case
// rows without state/district columns keep their empty values.
func NewImporter(samples store.Sample, resolver geo.LocationResolver) *Importer {
	return &Importer{
		samples:  samples,
		resolver: resolver,
	}
}

// ImportFile parses one CSV file and inserts its rows. Returns the number of
// samples inserted.
func (im *Importer) ImportFile(path string, defaultYear int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	samples, stats, err := ParseCSV(f, defaultYear)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix":  importerLogPrefix,
		"file":    path,
		"rows":    stats.Rows,
		"skipped": stats.Skipped,
		"imputed": stats.Imputed,
	}).Info("parsed dataset file")

	im.backfillAreas(samples)

	for start := 0; start < len(samples); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(samples) {
			end = len(samples)
		}
		if err := im.samples.InsertSamples(samples[start:end]); err != nil {
			return start, err
		}
	}

	return len(samples), nil
}

// backfillAreas resolves state/district from coordinates for rows missing
// them. Lookup failures are logged and the row is kept as-is.
func (im *Importer) backfillAreas(samples []schema.WaterSample) {
	if im.resolver == nil {
		return
	}

	for i := range samples {
		s := &samples[i]
		if (s.State != "" && s.District != "") || s.Location == nil {
			continue
		}

		area, err := im.resolver.GetAdministrativeArea(schema.Location{
			Latitude:  s.Location.Coordinates[1],
			Longitude: s.Location.Coordinates[0],
		})
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":  importerLogPrefix,
				"well_id": s.WellID,
				"error":   err,
			}).Warn("administrative area lookup failed")
			continue
		}

		if s.State == "" {
			s.State = area.State
		}
		if s.District == "" {
			s.District = area.District
		}
	}
}

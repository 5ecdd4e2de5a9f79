package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/openaquifer/groundwater-api/geo"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/wqi"
)

// Raw CGWB exports name the same column differently between years. Every
// alias maps to one canonical key, compared case-insensitively.
var columnAliases = map[string]string{
	"year":           "year",
	"state":          "state",
	"state name":     "state",
	"district":       "district",
	"district name":  "district",
	"block":          "block",
	"block name":     "block",
	"village":        "village",
	"latitude":       "latitude",
	"longitude":      "longitude",
	"well id":        "well_id",
	"well_id":        "well_id",
	"gems_id":        "well_id",
	"gems_id__w":     "well_id",
	"station code":   "well_id",
	"ph":             "ph",
	"ec":             "ec",
	"tds":            "tds",
	"th":             "th",
	"total hardness": "th",
	"ca":             "ca",
	"mg":             "mg",
	"na":             "na",
	"k":              "k",
	"cl":             "cl",
	"so4":            "so4",
	"no3":            "no3",
	"nitrate":        "no3",
	"f":              "f",
	"fluoride":       "f",
}

var numericColumns = []string{
	"ph", "ec", "tds", "th", "ca", "mg", "na", "k", "cl", "so4", "no3", "f",
	"latitude", "longitude", "year",
}

// ParseStats summarizes one parsed file.
type ParseStats struct {
	Rows    int
	Skipped int
	Imputed int
}

// ParseCSV reads one raw CGWB export and returns derived samples. Missing or
// unparsable numeric cells are imputed with the file's column median (0 when
// the whole column is empty), matching how the dataset was originally
// prepared. Rows without state and district that also lack coordinates are
// skipped.
func ParseCSV(r io.Reader, defaultYear int) ([]schema.WaterSample, ParseStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var stats ParseStats

	header, err := reader.Read()
	if err != nil {
		return nil, stats, err
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[i] = canonical
		}
	}

	type rawRow struct {
		text    map[string]string
		numbers map[string]float64
		missing map[string]bool
	}

	var rows []rawRow
	columnValues := map[string][]float64{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, err
		}

		row := rawRow{
			text:    map[string]string{},
			numbers: map[string]float64{},
			missing: map[string]bool{},
		}

		for i, cell := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			key := columns[i]

			if isNumericColumn(key) {
				value, ok := parseNumeric(cell)
				if !ok {
					row.missing[key] = true
					continue
				}
				row.numbers[key] = value
				columnValues[key] = append(columnValues[key], value)
			} else {
				row.text[key] = strings.TrimSpace(cell)
			}
		}
		rows = append(rows, row)
	}

	medians := make(map[string]float64, len(columnValues))
	for key, values := range columnValues {
		medians[key] = median(values)
	}

	samples := make([]schema.WaterSample, 0, len(rows))
	for _, row := range rows {
		for _, key := range numericColumns {
			if _, ok := row.numbers[key]; ok {
				continue
			}
			row.numbers[key] = medians[key]
			if row.missing[key] {
				stats.Imputed++
			}
		}

		lat, lng := row.numbers["latitude"], row.numbers["longitude"]
		hasLocation := geo.ValidCoordinate(lat, lng) && geo.InIndiaBounds(lat, lng)

		if row.text["state"] == "" && row.text["district"] == "" && !hasLocation {
			stats.Skipped++
			continue
		}

		year := int(row.numbers["year"])
		if year == 0 {
			year = defaultYear
		}

		wellID := row.text["well_id"]
		if wellID == "" {
			wellID = uuid.New().String()
		}

		sample := schema.WaterSample{
			WellID:   wellID,
			State:    row.text["state"],
			District: row.text["district"],
			Block:    row.text["block"],
			Village:  row.text["village"],
			Year:     year,

			PH:  row.numbers["ph"],
			EC:  row.numbers["ec"],
			TDS: row.numbers["tds"],
			TH:  row.numbers["th"],
			Ca:  row.numbers["ca"],
			Mg:  row.numbers["mg"],
			Na:  row.numbers["na"],
			K:   row.numbers["k"],
			Cl:  row.numbers["cl"],
			SO4: row.numbers["so4"],
			NO3: row.numbers["no3"],
			F:   row.numbers["f"],
		}

		if hasLocation {
			sample.Location = &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{lng, lat},
			}
		}

		derive(&sample)
		samples = append(samples, sample)
		stats.Rows++
	}

	return samples, stats, nil
}

// derive fills the quality fields computed once at import time.
func derive(sample *schema.WaterSample) {
	params := wqi.Params{
		PH:  sample.PH,
		EC:  sample.EC,
		TDS: sample.TDS,
		TH:  sample.TH,
		Ca:  sample.Ca,
		Mg:  sample.Mg,
		Na:  sample.Na,
		K:   sample.K,
		Cl:  sample.Cl,
		SO4: sample.SO4,
		NO3: sample.NO3,
		F:   sample.F,
	}

	sample.WQI = wqi.Calculate(params)
	sample.RiskCategory = string(wqi.Classify(sample.WQI))
	sample.Potable = sample.WQI < 100 && sample.PH >= 6.5 && sample.PH <= 8.5
	sample.SafeForUse = sample.WQI < 150
}

func isNumericColumn(key string) bool {
	for _, c := range numericColumns {
		if c == key {
			return true
		}
	}
	return false
}

// parseNumeric converts one raw cell. Sentinels like "BDL", "NIL" or "-" and
// anything else non-numeric count as missing.
func parseNumeric(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

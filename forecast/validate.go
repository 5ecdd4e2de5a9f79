package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/openaquifer/groundwater-api/schema"
)

// HoldoutYear is the most recent fully-measured year, kept out of the fit so
// predictions can be scored against it.
const HoldoutYear = 2022

// Validate refits every district on the years before holdoutYear, predicts
// the holdout year and compares against the measured average. Districts
// without a measured holdout value, or with fewer than two training points,
// contribute nothing. Records come back sorted by absolute error percentage.
func Validate(series []DistrictSeries, holdoutYear int) []schema.ValidationRecord {
	records := make([]schema.ValidationRecord, 0)

	for _, d := range series {
		id := fmt.Sprintf("%s/%s", d.State, d.District)

		for parameter, points := range d.Series {
			var train []YearValue
			actual := math.NaN()
			for _, p := range points {
				switch {
				case p.Year < holdoutYear:
					train = append(train, p)
				case p.Year == holdoutYear:
					actual = p.Value
				}
			}
			if math.IsNaN(actual) || len(train) < 2 {
				continue
			}

			predicted := projectParameter(parameter, train, holdoutYear)
			diff := predicted - actual

			errorPct := 0.0
			if actual != 0 {
				errorPct = diff / actual * 100
			}

			records = append(records, schema.ValidationRecord{
				WellID:       id,
				Parameter:    parameter,
				Actual:       round2(actual),
				Predicted:    round2(predicted),
				Error:        round2(diff),
				ErrorPercent: round2(errorPct),
				AbsError:     round2(math.Abs(diff)),
				AbsErrorPct:  round2(math.Abs(errorPct)),
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AbsErrorPct < records[j].AbsErrorPct
	})
	return records
}

package forecast

import (
	"sort"

	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/wqi"
)

// Projection horizon produced for every district.
var FutureYears = []int{2024, 2025, 2026, 2027, 2028, 2029, 2030}

// YearValue - one observed yearly average of a single parameter.
type YearValue struct {
	Year  int
	Value float64
}

// DistrictSeries - per-parameter yearly averages for one district, the input
// of the projection. Parameter keys: WQI, TDS, pH, NO3, F.
type DistrictSeries struct {
	State     string
	District  string
	Series    map[string][]YearValue
	Latitude  float64
	Longitude float64
}

// linearFit returns the least-squares slope and intercept of the points.
// Callers guarantee at least two points with distinct x.
func linearFit(points []YearValue) (slope, intercept float64) {
	n := float64(len(points))

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := float64(p.Year)
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func mean(points []YearValue) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// clamp keeps a projected value inside its physical range.
func clamp(parameter string, value float64) float64 {
	switch parameter {
	case "WQI":
		if value < 0 {
			return 0
		}
		if value > 300 {
			return 300
		}
	case "pH":
		if value < 0 {
			return 0
		}
		if value > 14 {
			return 14
		}
	default:
		if value < 0 {
			return 0
		}
	}
	return value
}

// projectParameter extrapolates one parameter to year. Districts with fewer
// than two yearly points fall back to the mean of what is available.
func projectParameter(parameter string, points []YearValue, year int) float64 {
	if len(points) < 2 {
		return clamp(parameter, mean(points))
	}

	sorted := make([]YearValue, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	slope, intercept := linearFit(sorted)
	return clamp(parameter, slope*float64(year)+intercept)
}

// GenerateDistrict projects one district over FutureYears. The risk
// category, potability and safety flags are derived from the projected WQI
// and pH rather than regressed directly.
func GenerateDistrict(d DistrictSeries) []schema.ForecastPoint {
	if len(d.Series["WQI"]) == 0 {
		return nil
	}

	points := make([]schema.ForecastPoint, 0, len(FutureYears))
	for _, year := range FutureYears {
		projectedWQI := projectParameter("WQI", d.Series["WQI"], year)
		projectedPH := projectParameter("pH", d.Series["pH"], year)

		p := schema.ForecastPoint{
			State:     d.State,
			District:  d.District,
			Year:      year,
			WQI:       round2(projectedWQI),
			TDS:       round2(projectParameter("TDS", d.Series["TDS"], year)),
			PH:        round2(projectedPH),
			NO3:       round2(projectParameter("NO3", d.Series["NO3"], year)),
			F:         round2(projectParameter("F", d.Series["F"], year)),
			Latitude:  d.Latitude,
			Longitude: d.Longitude,
		}

		p.RiskCategory = string(wqi.Classify(projectedWQI))
		p.Potable = projectedWQI < 100 && projectedPH >= 6.5 && projectedPH <= 8.5
		p.SafeForUse = projectedWQI < 150

		points = append(points, p)
	}

	return points
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int64(v*100-0.5)) / 100
	}
	return float64(int64(v*100+0.5)) / 100
}

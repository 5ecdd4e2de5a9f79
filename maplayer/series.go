package maplayer

import (
	"sort"

	"github.com/openaquifer/groundwater-api/schema"
)

// HistoricalBoundaryYear marks where measured data ends and projections
// begin on a combined chart.
const HistoricalBoundaryYear = 2023

// tdsDisplayDivisor scales TDS down for co-display with WQI on a shared
// axis. This is a visual convenience only, not a unit conversion; raw TDS
// values everywhere else in the system stay in mg/L.
const tdsDisplayDivisor = 10.0

// SeriesPoint - one plotted year.
type SeriesPoint struct {
	Year  int
	Value float64
}

// ChartSeries - line chart input assembled from historical trends and
// forecast points.
type ChartSeries struct {
	WQI          []SeriesPoint
	TDSScaled    []SeriesPoint
	NO3          []SeriesPoint
	F            []SeriesPoint
	BoundaryYear int
}

// BuildSeries merges historical trend points with forecast points into
// ascending-year chart series. Inputs are re-sorted defensively even though
// callers are expected to pass sorted data.
func BuildSeries(history []schema.TemporalTrendPoint, forecast []schema.ForecastPoint) ChartSeries {
	sorted := make([]schema.TemporalTrendPoint, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	projected := make([]schema.ForecastPoint, len(forecast))
	copy(projected, forecast)
	sort.Slice(projected, func(i, j int) bool { return projected[i].Year < projected[j].Year })

	s := ChartSeries{BoundaryYear: HistoricalBoundaryYear}

	for _, p := range sorted {
		s.WQI = append(s.WQI, SeriesPoint{p.Year, p.AvgWQI})
		s.TDSScaled = append(s.TDSScaled, SeriesPoint{p.Year, ScaleTDSForDisplay(p.AvgTDS)})
		s.NO3 = append(s.NO3, SeriesPoint{p.Year, p.AvgNO3})
		s.F = append(s.F, SeriesPoint{p.Year, p.AvgF})
	}

	for _, p := range projected {
		s.WQI = append(s.WQI, SeriesPoint{p.Year, p.WQI})
		s.TDSScaled = append(s.TDSScaled, SeriesPoint{p.Year, ScaleTDSForDisplay(p.TDS)})
		s.NO3 = append(s.NO3, SeriesPoint{p.Year, p.NO3})
		s.F = append(s.F, SeriesPoint{p.Year, p.F})
	}

	return s
}

// ScaleTDSForDisplay divides TDS by 10 so it shares an axis with WQI.
func ScaleTDSForDisplay(tds float64) float64 {
	return tds / tdsDisplayDivisor
}

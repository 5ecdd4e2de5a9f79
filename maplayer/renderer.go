package maplayer

import (
	"fmt"

	"github.com/openaquifer/groundwater-api/geo"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/wqi"
)

// Mode selects how a MapView renders its points. The two modes are mutually
// exclusive: rendering one always clears the other.
type Mode int

const (
	ModeMarkers Mode = iota
	ModeHeatmap
)

const heatmapScale = 150.0

// GradientStops - 5-stop heatmap gradient keyed by normalized intensity.
var GradientStops = map[float64]string{
	0.2: "blue",
	0.4: "cyan",
	0.6: "lime",
	0.8: "yellow",
	1.0: "red",
}

// Marker - one discrete map marker with its popup content.
type Marker struct {
	Latitude  float64
	Longitude float64
	Color     string
	Popup     string
}

// HeatPoint - one weighted density point.
type HeatPoint struct {
	Latitude  float64
	Longitude float64
	Intensity float64
}

// Bounds - viewport rectangle fitted around the rendered marker set.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// MapView holds the currently rendered layer set. Render is idempotent:
// the same input and mode always produce the same visible state.
type MapView struct {
	mode     Mode
	markers  []Marker
	heat     []HeatPoint
	viewport *Bounds
}

func NewMapView() *MapView {
	return &MapView{}
}

// Render replaces the current layer set with one built from points in the
// given mode. Points with invalid or out-of-bounds coordinates are silently
// dropped.
func (v *MapView) Render(points []schema.MapPoint, mode Mode) {
	// previous layers are always cleared first so a mode switch cannot
	// leak overlays
	v.markers = nil
	v.heat = nil
	v.viewport = nil
	v.mode = mode

	for _, p := range points {
		if !geo.ValidCoordinate(p.Latitude, p.Longitude) {
			continue
		}
		if !geo.InIndiaBounds(p.Latitude, p.Longitude) {
			continue
		}

		switch mode {
		case ModeMarkers:
			v.markers = append(v.markers, buildMarker(p))
		case ModeHeatmap:
			v.heat = append(v.heat, HeatPoint{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Intensity: heatIntensity(p.AvgWQI),
			})
		}
	}

	if mode == ModeMarkers && len(v.markers) > 0 {
		v.viewport = fitBounds(v.markers)
	}
}

// Mode returns the mode of the last render.
func (v *MapView) Mode() Mode {
	return v.mode
}

// Markers returns the marker layer, empty unless the last render was in
// marker mode.
func (v *MapView) Markers() []Marker {
	return v.markers
}

// HeatPoints returns the density layer, empty unless the last render was in
// heatmap mode.
func (v *MapView) HeatPoints() []HeatPoint {
	return v.heat
}

// Viewport returns the fitted marker bounds, nil when nothing is fitted.
func (v *MapView) Viewport() *Bounds {
	return v.viewport
}

// LayerCount returns the number of rendered overlays across both layers.
func (v *MapView) LayerCount() int {
	return len(v.markers) + len(v.heat)
}

func buildMarker(p schema.MapPoint) Marker {
	category := wqi.RiskCategory(p.RiskCategory)
	if p.RiskCategory == "" {
		category = wqi.Classify(p.AvgWQI)
	}

	return Marker{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Color:     wqi.Color(category),
		Popup: fmt.Sprintf("%s, %s\nWQI: %.2f (%s)\nSamples: %d\n(%.4f, %.4f)",
			p.District, p.State, p.AvgWQI, category, p.SampleCount, p.Latitude, p.Longitude),
	}
}

// heatIntensity normalizes a WQI score into [0, 1] against the unsuitable
// threshold.
func heatIntensity(avgWQI float64) float64 {
	intensity := avgWQI / heatmapScale
	if intensity > 1 {
		return 1
	}
	if intensity < 0 {
		return 0
	}
	return intensity
}

func fitBounds(markers []Marker) *Bounds {
	b := &Bounds{
		North: markers[0].Latitude,
		South: markers[0].Latitude,
		East:  markers[0].Longitude,
		West:  markers[0].Longitude,
	}
	for _, m := range markers[1:] {
		if m.Latitude > b.North {
			b.North = m.Latitude
		}
		if m.Latitude < b.South {
			b.South = m.Latitude
		}
		if m.Longitude > b.East {
			b.East = m.Longitude
		}
		if m.Longitude < b.West {
			b.West = m.Longitude
		}
	}
	return b
}

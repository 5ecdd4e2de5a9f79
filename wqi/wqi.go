package wqi

// Params holds the 12 chemical parameters of one measurement. Units are
// mg/L except PH (unit-less) and EC (µS/cm).
type Params struct {
	PH  float64
	EC  float64
	TDS float64
	TH  float64
	Ca  float64
	Mg  float64
	Na  float64
	K   float64
	Cl  float64
	SO4 float64
	NO3 float64
	F   float64
}

type standard struct {
	acceptable float64
	max        float64
}

// BIS drinking water standards used for the quality rating of each parameter.
var bisStandards = map[string]standard{
	"tds": {500, 2000},
	"th":  {200, 600},
	"cl":  {250, 1000},
	"so4": {200, 400},
	"no3": {45, 100},
	"f":   {1.0, 1.5},
	"ca":  {75, 200},
	"mg":  {30, 100},
	"na":  {200, 200},
}

var wqiWeights = map[string]float64{
	"ph":  0.12,
	"tds": 0.15,
	"th":  0.10,
	"cl":  0.08,
	"so4": 0.08,
	"no3": 0.15,
	"f":   0.12,
	"ca":  0.05,
	"mg":  0.05,
	"na":  0.05,
}

const (
	phIdeal      = 7.0
	phAcceptMin  = 6.5
	phAcceptMax  = 8.5
	wqiScoreCap  = 200.0
	subIndexFull = 100.0
)

func (p Params) byKey() map[string]float64 {
	return map[string]float64{
		"ph":  p.PH,
		"tds": p.TDS,
		"th":  p.TH,
		"cl":  p.Cl,
		"so4": p.SO4,
		"no3": p.NO3,
		"f":   p.F,
		"ca":  p.Ca,
		"mg":  p.Mg,
		"na":  p.Na,
	}
}

// Calculate computes the weighted Water Quality Index, WQI = Σ(Wi·Qi)/ΣWi.
// The score is capped to [0, 200]. Lower is better.
func Calculate(p Params) float64 {
	values := p.byKey()

	var wqiSum, totalWeight float64
	for key, weight := range wqiWeights {
		value := values[key]

		var qi float64
		if key == "ph" {
			qi = phSubIndex(value)
		} else {
			s := bisStandards[key]
			qi = subIndex(value, s.acceptable, s.max)
		}

		wqiSum += weight * qi
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	final := wqiSum / totalWeight
	if final < 0 {
		return 0
	}
	if final > wqiScoreCap {
		return wqiScoreCap
	}
	return final
}

// phSubIndex rates pH by its deviation from the ideal 7.0. Values inside the
// acceptable band contribute nothing.
func phSubIndex(value float64) float64 {
	if value >= phAcceptMin && value <= phAcceptMax {
		return 0
	}

	deviation := value - phIdeal
	if deviation < 0 {
		deviation = -deviation
	}
	if deviation > phIdeal {
		deviation = phIdeal
	}
	return deviation / phIdeal * subIndexFull
}

// subIndex maps a concentration to a 0-200 quality rating: 0-50 inside the
// acceptable limit, 50-100 between acceptable and max, 100-200 beyond max.
func subIndex(value, acceptable, max float64) float64 {
	switch {
	case value <= acceptable:
		return value / acceptable * 50
	case value <= max:
		return 50 + (value-acceptable)/(max-acceptable)*50
	default:
		excess := (value - max) / max * subIndexFull
		if excess > subIndexFull {
			excess = subIndexFull
		}
		return subIndexFull + excess
	}
}

package wqi

import "fmt"

// Recommendations returns human readable remediation advice for the given
// parameters and computed WQI, most specific issues first.
func Recommendations(p Params, wqi float64) []string {
	recommendations := []string{}

	if p.PH < 6.5 {
		recommendations = append(recommendations, "Low pH detected. pH adjustment needed.")
	} else if p.PH > 8.5 {
		recommendations = append(recommendations, "High pH detected. Acidification recommended.")
	}

	if p.TDS > 500 {
		recommendations = append(recommendations, "High TDS. Reverse osmosis recommended.")
	}

	if p.NO3 > 45 {
		recommendations = append(recommendations, "Nitrate exceeds limits. Not suitable for drinking.")
	}

	if p.F > 1.5 {
		recommendations = append(recommendations, "High fluoride. Defluoridation required.")
	}

	if p.TH > 300 {
		recommendations = append(recommendations, "Hard water detected. Softening recommended.")
	}

	switch {
	case wqi < 50:
		recommendations = append(recommendations, "Water quality is excellent. Safe for use.")
	case wqi < 100:
		recommendations = append(recommendations, "Water quality is good. Minimal treatment needed.")
	default:
		recommendations = append(recommendations, "Water quality is poor. Treatment required.")
	}

	return recommendations
}

type parameterLimit struct {
	min  float64
	max  float64
	unit string
}

var statusLimits = map[string]parameterLimit{
	"pH":  {6.5, 8.5, ""},
	"TDS": {0, 500, "mg/L"},
	"NO3": {0, 45, "mg/L"},
	"F":   {0, 1.5, "mg/L"},
	"TH":  {0, 300, "mg/L"},
	"Cl":  {0, 250, "mg/L"},
	"SO4": {0, 200, "mg/L"},
}

// ParameterStatus labels each checked parameter as within range, safe or
// exceeding its limit.
func ParameterStatus(p Params) map[string]string {
	values := map[string]float64{
		"pH":  p.PH,
		"TDS": p.TDS,
		"NO3": p.NO3,
		"F":   p.F,
		"TH":  p.TH,
		"Cl":  p.Cl,
		"SO4": p.SO4,
	}

	status := make(map[string]string, len(values))
	for name, limit := range statusLimits {
		value := values[name]

		if name == "pH" {
			if value < limit.min || value > limit.max {
				status[name] = fmt.Sprintf("Out of range (%.2f)", value)
			} else {
				status[name] = fmt.Sprintf("Within range (%.2f)", value)
			}
			continue
		}

		if value > limit.max {
			status[name] = fmt.Sprintf("Exceeds limit (%.2f %s)", value, limit.unit)
		} else {
			status[name] = fmt.Sprintf("Safe (%.2f %s)", value, limit.unit)
		}
	}

	return status
}

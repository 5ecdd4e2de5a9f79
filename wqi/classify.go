package wqi

// RiskCategory - discrete water quality class derived from the WQI score.
// Higher WQI means worse quality.
type RiskCategory string

const (
	RiskExcellent  RiskCategory = "Excellent"
	RiskGood       RiskCategory = "Good"
	RiskPoor       RiskCategory = "Poor"
	RiskVeryPoor   RiskCategory = "Very Poor"
	RiskUnsuitable RiskCategory = "Unsuitable"
)

// Classify maps a WQI score to its risk category. Total over all real
// inputs; each bracket is closed on its lower bound (25 -> Good).
func Classify(wqi float64) RiskCategory {
	switch {
	case wqi < 25:
		return RiskExcellent
	case wqi < 50:
		return RiskGood
	case wqi < 100:
		return RiskPoor
	case wqi < 150:
		return RiskVeryPoor
	default:
		return RiskUnsuitable
	}
}

// Color returns the display color of a risk category. The map layer and the
// prediction result layer both go through this single mapping.
func Color(category RiskCategory) string {
	switch category {
	case RiskExcellent:
		return "green"
	case RiskGood:
		return "lightgreen"
	case RiskPoor:
		return "orange"
	case RiskVeryPoor:
		return "darkorange"
	default:
		return "red"
	}
}

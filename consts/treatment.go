package consts

import (
	"fmt"
	"strconv"
	"strings"
)

// Water issue categories keyed by the parameter that trips them.
const (
	IssueHighTDS      = "high_tds"
	IssueHighFluoride = "high_fluoride"
	IssueHighNitrate  = "high_nitrate"
	IssueHardness     = "hardness"
	IssueLowPH        = "low_ph"
	IssueHighPH       = "high_ph"
	IssueHighIron     = "high_iron"
)

// TreatmentOption - one remediation option for a water issue. Static
// reference data, never mutated at runtime.
type TreatmentOption struct {
	Chemical   string
	Dosage     string
	Mechanism  string
	CostPerM3  string
	Advantages string
}

// Treatments lists remediation options per issue category, ordered by
// preference (cheapest adequate option first).
var Treatments = map[string][]TreatmentOption{
	IssueHighTDS: {
		{
			Chemical:   "Reverse osmosis membrane",
			Dosage:     "module sized per demand",
			Mechanism:  "Pressure-driven membrane separation removes dissolved solids",
			CostPerM3:  "₹100-250/m³",
			Advantages: "Removes most dissolved salts, compact footprint",
		},
		{
			Chemical:   "Electrodialysis stack",
			Dosage:     "module sized per demand",
			Mechanism:  "Ion-selective membranes driven by a DC field",
			CostPerM3:  "₹150-300/m³",
			Advantages: "Better recovery than RO at moderate TDS",
		},
	},
	IssueHighFluoride: {
		{
			Chemical:   "Activated alumina",
			Dosage:     "2-4 g/L bed contact",
			Mechanism:  "Adsorption of fluoride onto alumina surface",
			CostPerM3:  "₹40-90/m³",
			Advantages: "Well proven for rural defluoridation",
		},
		{
			Chemical:   "Lime + alum (Nalgonda)",
			Dosage:     "5-10 mg/L alum per mg/L F",
			Mechanism:  "Coprecipitation with aluminium hydroxide flocs",
			CostPerM3:  "₹20-60/m³",
			Advantages: "Low cost, operable at village scale",
		},
	},
	IssueHighNitrate: {
		{
			Chemical:   "Anion exchange resin",
			Dosage:     "regenerated with NaCl brine",
			Mechanism:  "Nitrate exchanged for chloride on strong-base resin",
			CostPerM3:  "₹60-140/m³",
			Advantages: "Fast, handles spikes in feed concentration",
		},
		{
			Chemical:   "Reverse osmosis membrane",
			Dosage:     "module sized per demand",
			Mechanism:  "Membrane rejection of nitrate ions",
			CostPerM3:  "₹100-250/m³",
			Advantages: "Also removes co-occurring TDS",
		},
	},
	IssueHardness: {
		{
			Chemical:   "Hydrated lime",
			Dosage:     "80-120 mg/L",
			Mechanism:  "Precipitates carbonate hardness as CaCO3",
			CostPerM3:  "₹15-40/m³",
			Advantages: "Cheapest bulk softening method",
		},
		{
			Chemical:   "Cation exchange resin",
			Dosage:     "regenerated with NaCl brine",
			Mechanism:  "Ca/Mg exchanged for sodium on resin",
			CostPerM3:  "₹50-120/m³",
			Advantages: "Near-complete softening, compact units",
		},
	},
	IssueLowPH: {
		{
			Chemical:   "Soda ash",
			Dosage:     "10-30 mg/L",
			Mechanism:  "Raises pH by carbonate buffering",
			CostPerM3:  "₹10-25/m³",
			Advantages: "Simple dosing, no hardness added",
		},
	},
	IssueHighPH: {
		{
			Chemical:   "Food-grade citric acid",
			Dosage:     "5-20 mg/L",
			Mechanism:  "Neutralizes excess alkalinity",
			CostPerM3:  "₹15-35/m³",
			Advantages: "Safe handling compared to mineral acids",
		},
	},
	IssueHighIron: {
		{
			Chemical:   "Potassium permanganate + sand filter",
			Dosage:     "0.5-2 mg/L",
			Mechanism:  "Oxidizes dissolved iron, filters the precipitate",
			CostPerM3:  "₹20-50/m³",
			Advantages: "Handles iron and manganese together",
		},
	},
}

// TreatmentsFor returns the ordered remediation options for an issue
// category.
func TreatmentsFor(issue string) ([]TreatmentOption, error) {
	options, ok := Treatments[issue]
	if !ok {
		return nil, fmt.Errorf("unknown water issue %q", issue)
	}
	return options, nil
}

// CostEstimate computes the expected treatment cost of volumeLiters litres
// using the midpoint of a cost range such as "₹100-250/m³".
func CostEstimate(volumeLiters float64, costPerM3 string) (float64, error) {
	low, high, err := parseCostRange(costPerM3)
	if err != nil {
		return 0, err
	}

	midpoint := (low + high) / 2
	return volumeLiters / 1000 * midpoint, nil
}

// parseCostRange extracts the numeric bounds of a "₹LOW-HIGH/m³" string.
// A single value such as "₹80/m³" is treated as a degenerate range.
func parseCostRange(s string) (float64, float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "₹")
	if i := strings.Index(cleaned, "/"); i >= 0 {
		cleaned = cleaned[:i]
	}

	parts := strings.SplitN(cleaned, "-", 2)
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cost range %q", s)
	}

	high := low
	if len(parts) == 2 {
		high, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid cost range %q", s)
		}
	}

	return low, high, nil
}

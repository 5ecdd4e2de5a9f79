package wqi

// Potable reports whether water with the given parameters is fit for
// drinking per BIS thresholds.
func Potable(p Params) bool {
	return p.PH >= 6.5 && p.PH <= 8.5 &&
		p.TDS <= 1000 &&
		p.NO3 <= 50 &&
		p.F <= 1.5 &&
		p.TH <= 600
}

// SafeForUse reports whether water of the given WQI is usable at all.
func SafeForUse(wqi float64) bool {
	return wqi <= 100
}

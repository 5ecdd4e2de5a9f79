package wqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type potableTestCase struct {
	params   Params
	expected bool
}

func TestPotable(t *testing.T) {
	base := Params{PH: 7.2, TDS: 400, NO3: 20, F: 0.8, TH: 250}

	cases := []potableTestCase{
		{base, true},
		{Params{PH: 6.4, TDS: 400, NO3: 20, F: 0.8, TH: 250}, false},
		{Params{PH: 8.6, TDS: 400, NO3: 20, F: 0.8, TH: 250}, false},
		{Params{PH: 7.2, TDS: 1001, NO3: 20, F: 0.8, TH: 250}, false},
		{Params{PH: 7.2, TDS: 400, NO3: 51, F: 0.8, TH: 250}, false},
		{Params{PH: 7.2, TDS: 400, NO3: 20, F: 1.6, TH: 250}, false},
		{Params{PH: 7.2, TDS: 400, NO3: 20, F: 0.8, TH: 601}, false},
		// thresholds are inclusive
		{Params{PH: 6.5, TDS: 1000, NO3: 50, F: 1.5, TH: 600}, true},
	}

	for i, c := range cases {
		assert.Equal(t, c.expected, Potable(c.params), "case %d", i)
	}
}

func TestSafeForUse(t *testing.T) {
	assert.True(t, SafeForUse(0))
	assert.True(t, SafeForUse(100))
	assert.False(t, SafeForUse(100.01))
	assert.False(t, SafeForUse(150))
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations(Params{PH: 5.9, TDS: 900, NO3: 60, F: 2.0, TH: 400}, 120)
	assert.Len(t, recs, 6)
	assert.Contains(t, recs, "High fluoride. Defluoridation required.")
	assert.Equal(t, "Water quality is poor. Treatment required.", recs[len(recs)-1])

	recs = Recommendations(Params{PH: 7.0}, 10)
	assert.Equal(t, []string{"Water quality is excellent. Safe for use."}, recs)
}

func TestParameterStatus(t *testing.T) {
	status := ParameterStatus(Params{PH: 9.1, TDS: 650, NO3: 10, F: 0.4, TH: 100, Cl: 50, SO4: 30})

	assert.Equal(t, "Out of range (9.10)", status["pH"])
	assert.Equal(t, "Exceeds limit (650.00 mg/L)", status["TDS"])
	assert.Equal(t, "Safe (10.00 mg/L)", status["NO3"])
	assert.Len(t, status, 7)
}

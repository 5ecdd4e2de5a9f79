package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postPredict(t *testing.T, body map[string]interface{}) (*httptest.ResponseRecorder, predictResponse) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.predict)

	payload, err := json.Marshal(body)
	assert.Nil(t, err, "wrong json marshal")

	req := httptest.NewRequest("POST", "/", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp predictResponse
	if w.Code == http.StatusOK {
		err = json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Nil(t, err, "wrong json unmarshal")
	}
	return w, resp
}

func cleanParams() map[string]interface{} {
	return map[string]interface{}{
		"pH": 7.2, "EC": 500.0, "TDS": 300.0, "TH": 150.0,
		"Ca": 50.0, "Mg": 20.0, "Na": 40.0, "K": 5.0,
		"Cl": 100.0, "SO4": 80.0, "NO3": 20.0, "F": 0.5,
	}
}

func TestPredictCleanWater(t *testing.T) {
	w, resp := postPredict(t, cleanParams())

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.True(t, resp.WQI < 25, "wrong wqi for clean water")
	assert.Equal(t, "Excellent", resp.RiskCategory, "wrong risk category")
	assert.True(t, resp.Potable, "wrong potable flag")
	assert.True(t, resp.SafeForUse, "wrong safe flag")
	assert.Equal(t, 300.0, resp.PredictedTDS, "wrong predicted tds")
	assert.NotEmpty(t, resp.Recommendations, "missing recommendations")
	assert.Contains(t, resp.ParameterStatus, "pH", "missing pH status")
}

// A sample whose individual potability checks all pass can still carry a WQI
// above 100 once the unconstrained parameters are polluted enough. The
// response must then report non-potable and unsafe.
func TestPredictHighWQIOverridesPotability(t *testing.T) {
	params := cleanParams()
	params["pH"] = 7.0
	params["TDS"] = 1000.0
	params["TH"] = 600.0
	params["NO3"] = 50.0
	params["F"] = 1.5
	params["Ca"] = 1000.0
	params["Mg"] = 1000.0
	params["Na"] = 2000.0
	params["Cl"] = 5000.0
	params["SO4"] = 2000.0

	w, resp := postPredict(t, params)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.True(t, resp.WQI > 100, "expected wqi above 100, got %f", resp.WQI)
	assert.False(t, resp.Potable, "wqi above 100 must not be potable")
	assert.False(t, resp.SafeForUse, "wqi above 100 must not be safe")
}

func TestPredictMissingParameter(t *testing.T) {
	params := cleanParams()
	delete(params, "NO3")

	w, _ := postPredict(t, params)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestPredictInvalidPH(t *testing.T) {
	params := cleanParams()
	params["pH"] = 15.0

	w, _ := postPredict(t, params)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

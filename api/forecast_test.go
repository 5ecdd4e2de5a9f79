package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openaquifer/groundwater-api/api/mocks"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/store"
)

func forecastRouter(m *mocks.MockMongoStore) *gin.Engine {
	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/forecast", s.forecastValidation)
	router.GET("/forecast/:district", s.districtForecast)
	return router
}

func TestDistrictForecast(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	points := []schema.ForecastPoint{
		{District: "Jaipur", State: "Rajasthan", Year: 2024, WQI: 120, RiskCategory: "Very Poor"},
		{District: "Jaipur", State: "Rajasthan", Year: 2025, WQI: 128, RiskCategory: "Very Poor"},
	}
	m.EXPECT().DistrictForecast("Jaipur").Return(points, nil).Times(1)

	router := forecastRouter(m)
	req := httptest.NewRequest("GET", "/forecast/Jaipur", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		District     string                 `json:"district"`
		State        string                 `json:"state"`
		ForecastData []schema.ForecastPoint `json:"forecast_data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Jaipur", resp.District, "wrong district")
	assert.Equal(t, "Rajasthan", resp.State, "wrong state")
	assert.Len(t, resp.ForecastData, 2, "wrong forecast length")
	assert.Equal(t, 2024, resp.ForecastData[0].Year, "wrong first year")
}

func TestDistrictForecastNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().DistrictForecast("Atlantis").Return(nil, store.ErrDistrictNotFound).Times(1)

	router := forecastRouter(m)
	req := httptest.NewRequest("GET", "/forecast/Atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), resp.Code, "wrong error code")
}

func TestForecastValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	records := []schema.ValidationRecord{
		{WellID: "W1", Parameter: "WQI", Actual: 80, Predicted: 82, AbsErrorPct: 2.5},
	}
	m.EXPECT().
		ValidationRecords("WQI", int64(0), int64(50)).
		Return(records, int64(31), []string{"TDS", "WQI"}, nil).
		Times(1)

	router := forecastRouter(m)
	req := httptest.NewRequest("GET", "/forecast?parameter=WQI", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Data         []schema.ValidationRecord `json:"data"`
		Parameters   []string                  `json:"parameters"`
		TotalRecords int64                     `json:"total_records"`
		HasMore      bool                      `json:"has_more"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Data, 1, "wrong record count")
	assert.Equal(t, []string{"TDS", "WQI"}, resp.Parameters, "wrong parameter list")
	assert.Equal(t, int64(31), resp.TotalRecords, "wrong total")
	assert.True(t, resp.HasMore, "expected more pages")
}

func TestForecastSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().ValidationSummary().Return(map[string]schema.ParameterValidationStats{
		"WQI": {MAE: 4.2, RMSE: 6.1, R2: 0.87, Samples: 310},
	}, nil).Times(1)

	router := forecastRouter(m)
	req := httptest.NewRequest("GET", "/forecast/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Parameters map[string]schema.ParameterValidationStats `json:"parameters"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 4.2, resp.Parameters["WQI"].MAE, "wrong mae")
	assert.Equal(t, 310, resp.Parameters["WQI"].Samples, "wrong sample count")
}

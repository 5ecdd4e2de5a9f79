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

func districtRouter(m *mocks.MockMongoStore) *gin.Engine {
	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/districts", s.districts)
	router.GET("/district-data", s.districtData)
	router.GET("/states", s.states)
	return router
}

func TestDistricts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	aggregates := []schema.DistrictAggregate{
		{District: "Jaipur", State: "Rajasthan", AvgWQI: 140, AvgTDS: 1800, RiskScore: 130.5, SampleCount: 88},
		{District: "Nagpur", State: "Maharashtra", AvgWQI: 60, AvgTDS: 500, RiskScore: 52.2, SampleCount: 120},
	}
	m.EXPECT().DistrictAggregates(int64(5), "").Return(aggregates, nil).Times(1)

	router := districtRouter(m)
	req := httptest.NewRequest("GET", "/districts?limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp []schema.DistrictAggregate
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp, 2, "wrong district count")
	assert.Equal(t, "Jaipur", resp[0].District, "wrong first district")
	assert.Equal(t, 130.5, resp[0].RiskScore, "wrong risk score")
}

func TestDistrictsUnknownSortKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().DistrictAggregates(gomock.Any(), "bogus").Return(nil, store.ErrUnknownSortKey).Times(1)

	router := districtRouter(m)
	req := httptest.NewRequest("GET", "/districts?sort_by=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1102), resp.Code, "wrong error code")
}

func TestDistrictDataPagination(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	firstPage := make([]schema.WaterSample, 50)
	m.EXPECT().
		ListSamples(store.SampleFilter{State: "Rajasthan", Offset: 0, Limit: 50}).
		Return(firstPage, int64(120), nil).
		Times(1)

	lastPage := make([]schema.WaterSample, 20)
	m.EXPECT().
		ListSamples(store.SampleFilter{State: "Rajasthan", Offset: 100, Limit: 50}).
		Return(lastPage, int64(120), nil).
		Times(1)

	router := districtRouter(m)

	req := httptest.NewRequest("GET", "/district-data?state=Rajasthan&offset=0&limit=50", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Data         []schema.WaterSample `json:"data"`
		TotalRecords int64                `json:"total_records"`
		HasMore      bool                 `json:"has_more"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Data, 50, "wrong page size")
	assert.Equal(t, int64(120), resp.TotalRecords, "wrong total")
	assert.True(t, resp.HasMore, "expected more pages")

	req = httptest.NewRequest("GET", "/district-data?state=Rajasthan&offset=100&limit=50", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Data, 20, "wrong last page size")
	assert.False(t, resp.HasMore, "expected no further pages")
}

func TestDistrictDataInvalidOffset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	router := districtRouter(m)

	req := httptest.NewRequest("GET", "/district-data?offset=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestStates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().States().Return([]string{"Maharashtra", "Rajasthan"}, nil).Times(1)

	router := districtRouter(m)
	req := httptest.NewRequest("GET", "/states", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string][]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, []string{"Maharashtra", "Rajasthan"}, resp["states"], "wrong states")
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openaquifer/groundwater-api/alert"
	"github.com/openaquifer/groundwater-api/api/mocks"
	"github.com/openaquifer/groundwater-api/store"
)

func TestAdminTriggerAlert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGroundwaterCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	mailer := mocks.NewMockMailer(ctl)

	s := Server{
		store:       a,
		mongoStore:  m,
		alertEngine: alert.NewEngine(a, m, mailer),
	}

	a.EXPECT().SubscribersFor("Jaipur", "district").Return([]store.SubscriptionRecord{
		{Email: "one@example.com", Location: "Jaipur", Type: "district"},
		{Email: "two@example.com", Location: "Jaipur", Type: "district"},
	}, nil).Times(1)

	mailer.EXPECT().SendAlert("one@example.com", "Jaipur", 155.0).Return(nil).Times(1)
	mailer.EXPECT().SendAlert("two@example.com", "Jaipur", 155.0).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/trigger-alert", s.adminTriggerAlert)

	payload, _ := json.Marshal(map[string]interface{}{
		"location": "Jaipur",
		"type":     "district",
		"wqi":      155.0,
	})
	req := httptest.NewRequest("POST", "/trigger-alert", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, float64(2), resp["subscribers"], "wrong subscriber count")
	assert.Equal(t, float64(2), resp["sent"], "wrong sent count")
}

func TestAdminRunAlertJob(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGroundwaterCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	mailer := mocks.NewMockMailer(ctl)

	s := Server{
		store:       a,
		mongoStore:  m,
		alertEngine: alert.NewEngine(a, m, mailer),
	}

	a.EXPECT().ListSubscriptions().Return([]store.SubscriptionRecord{
		{Email: "warned@example.com", Location: "Jaipur", Type: "district"},
		{Email: "fine@example.com", Location: "Pune", Type: "district"},
	}, nil).Times(1)

	m.EXPECT().AvgWQIForLocation("Jaipur", "district").Return(132.4, 40, nil).Times(1)
	m.EXPECT().AvgWQIForLocation("Pune", "district").Return(48.0, 55, nil).Times(1)

	// only the location above the warning threshold gets mail
	mailer.EXPECT().SendAlert("warned@example.com", "Jaipur", 132.4).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/run-job", s.adminRunAlertJob)

	req := httptest.NewRequest("POST", "/run-job", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, float64(1), resp["sent"], "wrong sent count")
}

func TestApikeyAuthentication(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("sekrit"))
	router.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"result": "OK"}) })

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "missing key must be rejected")

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Api-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong key must be rejected")

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Api-Token", "sekrit")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "valid key must pass")
}

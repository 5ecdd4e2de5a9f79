package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type triggerAlertRequest struct {
	Location string  `json:"location" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	WQI      float64 `json:"wqi" binding:"required"`
}

// adminTriggerAlert is an internal only api to mail every subscriber of one
// location without threshold checks, for verifying the alert pipeline.
func (s *Server) adminTriggerAlert(c *gin.Context) {
	var req triggerAlertRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	subscribers, sent := s.alertEngine.Trigger(req.Location, req.Type, req.WQI)

	c.JSON(http.StatusOK, gin.H{
		"result":      "OK",
		"subscribers": subscribers,
		"sent":        sent,
	})
}

// adminRunAlertJob is an internal only api to run the scheduled alert check
// immediately instead of waiting for the next cron tick.
func (s *Server) adminRunAlertJob(c *gin.Context) {
	sent := s.alertEngine.Run()

	c.JSON(http.StatusOK, gin.H{
		"result": "OK",
		"sent":   sent,
	})
}

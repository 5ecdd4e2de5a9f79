package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// temporalTrends returns the year-by-year national averages, ascending.
func (s *Server) temporalTrends(c *gin.Context) {
	trends, err := s.mongoStore.TemporalTrends()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/store"
)

// districtForecast returns a district's projected points for the coming
// years, ordered ascending. The router cannot mount a static /forecast/summary
// next to the :district wildcard, so the summary path is dispatched here.
func (s *Server) districtForecast(c *gin.Context) {
	district := c.Param("district")
	if district == "summary" {
		s.forecastSummary(c)
		return
	}

	points, err := s.mongoStore.DistrictForecast(district)
	if err != nil {
		if err == store.ErrDistrictNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorDistrictNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"district":      points[0].District,
		"state":         points[0].State,
		"forecast_data": points,
	})
}

// forecastValidation serves one page of hold-out validation rows, best
// predictions first.
func (s *Server) forecastValidation(c *gin.Context) {
	offset, err := queryInt64(c, "offset", 0)
	if err != nil || offset < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	limit, err := queryInt64(c, "limit", defaultPageLimit)
	if err != nil || limit <= 0 || limit > maxPageLimit {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	records, total, parameters, err := s.mongoStore.ValidationRecords(c.Query("parameter"), offset, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          records,
		"parameters":    parameters,
		"total_records": total,
		"offset":        offset,
		"limit":         limit,
		"has_more":      offset+int64(len(records)) < total,
	})
}

func (s *Server) forecastSummary(c *gin.Context) {
	summary, err := s.mongoStore.ValidationSummary()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"parameters": summary})
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/store"
)

// mapData returns the district-grouped map points wrapped with counts, the
// shape the dashboard map consumes.
func (s *Server) mapData(c *gin.Context) {
	year, points, ok := s.loadMapPoints(c)
	if !ok {
		return
	}

	resp := gin.H{
		"data":            points,
		"total_districts": len(points),
	}
	if year != nil {
		resp["year"] = *year
	}
	c.JSON(http.StatusOK, resp)
}

// mapDataRaw returns the bare point array for clients doing their own
// envelope handling.
func (s *Server) mapDataRaw(c *gin.Context) {
	_, points, ok := s.loadMapPoints(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, points)
}

func (s *Server) loadMapPoints(c *gin.Context) (*int, []schema.MapPoint, bool) {
	var year *int
	if yearQuery := c.Query("year"); yearQuery != "" {
		y, err := strconv.Atoi(yearQuery)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return nil, nil, false
		}
		year = &y
	}

	points, err := s.mongoStore.MapPoints(year)
	if err != nil {
		if err == store.ErrNoDataForYear {
			abortWithEncoding(c, http.StatusNotFound, errorNoDataForYear)
			return nil, nil, false
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return nil, nil, false
	}

	return year, points, true
}

func (s *Server) availableYears(c *gin.Context) {
	years, err := s.mongoStore.AvailableYears()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": years})
}

func (s *Server) availableYearsRaw(c *gin.Context) {
	details, err := s.mongoStore.AvailableYearDetails()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

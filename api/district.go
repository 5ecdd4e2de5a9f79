package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/store"
)

const (
	defaultDistrictLimit = 20
	defaultPageLimit     = 50
	maxPageLimit         = 500
)

// districts returns the district aggregates ranked by the requested key,
// composite risk score by default.
func (s *Server) districts(c *gin.Context) {
	limit, err := queryInt64(c, "limit", defaultDistrictLimit)
	if err != nil || limit <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	aggregates, err := s.mongoStore.DistrictAggregates(limit, c.Query("sort_by"))
	if err != nil {
		if err == store.ErrUnknownSortKey {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownSortKey)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, aggregates)
}

// districtData serves one page of raw sample rows with optional year, state
// and district filters.
func (s *Server) districtData(c *gin.Context) {
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

	filter := store.SampleFilter{
		State:    c.Query("state"),
		District: c.Query("district"),
		Offset:   offset,
		Limit:    limit,
	}
	if yearQuery := c.Query("year"); yearQuery != "" {
		year, err := strconv.Atoi(yearQuery)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		filter.Year = year
	}

	samples, total, err := s.mongoStore.ListSamples(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          samples,
		"total_records": total,
		"offset":        offset,
		"limit":         limit,
		"has_more":      offset+int64(len(samples)) < total,
	})
}

func (s *Server) states(c *gin.Context) {
	states, err := s.mongoStore.States()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}

func queryInt64(c *gin.Context, name string, fallback int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

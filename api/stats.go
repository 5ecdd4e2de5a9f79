package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/store"
)

func (s *Server) stats(c *gin.Context) {
	stats, err := s.mongoStore.Stats()
	if err != nil {
		if err == store.ErrDataNotLoaded {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorDataNotLoaded)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

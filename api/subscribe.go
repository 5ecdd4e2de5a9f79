package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openaquifer/groundwater-api/store"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type subscribeRequest struct {
	Email    string `json:"email" binding:"required"`
	Location string `json:"location" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

// subscribe registers an email for alerts on one district or state.
func (s *Server) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidEmail)
		return
	}

	err := s.store.CreateSubscription(req.Email, req.Location, req.Type)
	switch err {
	case nil:
	case store.ErrAlreadySubscribed:
		abortWithEncoding(c, http.StatusBadRequest, errorAlreadySubscribed)
		return
	case store.ErrInvalidSubscriptionType:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSubscriptionType)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   "OK",
		"location": strings.TrimSpace(req.Location),
	})
}

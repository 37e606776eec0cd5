package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Jc007zZ/mealtracker/types"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case types.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case types.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// recordID parses the :id path segment. An unparseable id behaves like a
// missing record.
func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return 0, false
	}
	return uint(id), true
}

// parseDay accepts "2006-01-02" or a full timestamp and keeps the date
// part only.
func parseDay(s string) (time.Time, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return time.Parse("2006-01-02", s)
}

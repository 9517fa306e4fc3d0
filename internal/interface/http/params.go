package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultMaxResults = 12
	upstreamMaxCap    = 50
	defaultPageSize   = 10
)

// intQuery reads an integer query parameter; absent or malformed values give def.
func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// maxResults reads maxResults for upstream-backed endpoints, clamped to [1, 50].
func maxResults(c *gin.Context) int {
	return min(max(intQuery(c, "maxResults", defaultMaxResults), 1), upstreamMaxCap)
}

package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseOffsetLimit extracts and validates offset/limit pagination parameters
// from the request query string.
func ParseOffsetLimit(c *gin.Context) (offset uint64, limit int) {
	offsetStr := c.DefaultQuery("offset", "0")
	parsedOffset, err := strconv.ParseUint(offsetStr, 10, 64)
	if err == nil {
		offset = parsedOffset
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return offset, limit
}

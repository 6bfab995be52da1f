package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseLimit reads the limit query parameter. Absent or non-numeric values
// come back as 0 so the usecase applies its configured default; clamping to
// the ceiling also happens there.
func ParseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}

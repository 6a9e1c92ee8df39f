package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(v), true
}

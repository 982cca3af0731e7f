package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/domain/identity"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/middleware"
)

// idParam reads :id. A malformed id cannot name an existing row, so it is
// reported as not found.
func idParam(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.FromError(c, apperr.NotFound(what+" not found"))
		return 0, false
	}
	return uint(id), true
}

func mustCaller(c *gin.Context) (identity.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "authentication required")
		return identity.Caller{}, false
	}
	return caller, true
}

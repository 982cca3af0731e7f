package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/dto"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/httpresp"
	"github.com/BruksfildServices01/beauty-booking/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the user the auth middleware already loaded.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		httperr.Unauthorized(c, string(apperr.CodeUnauthorized), "authentication required")
		return
	}

	httpresp.OK(c, dto.FromUser(user))
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
)

// Me returns the profile behind the bearer token.
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	u, err := h.get.ByEmail(c.Request.Context(), actor.Email)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(u))
}

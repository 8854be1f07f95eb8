package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/middleware"
)

// identity returns the authenticated caller or writes a 401.
func identity(c *gin.Context) (auth.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "token_missing", "Authentication required.")
		return auth.Identity{}, false
	}
	return id, true
}

// requireAdmin returns the caller when it holds the ADMIN role, otherwise it
// writes a 403.
func requireAdmin(c *gin.Context) (auth.Identity, bool) {
	id, ok := identity(c)
	if !ok {
		return id, false
	}
	if !id.IsAdmin() {
		httperr.Forbidden(c, "admin_only", "Access denied.")
		return id, false
	}
	return id, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(n), true
}

// writeError maps business errors onto their status and hides everything else
// behind a 500, logging the cause.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if httperr.FromError(c, err) {
		return
	}
	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

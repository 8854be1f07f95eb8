package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

// BlockedSubnet rejects callers whose IP starts with prefix, before any
// authentication happens. An empty prefix disables the check.
func BlockedSubnet(prefix string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if prefix == "" {
			c.Next()
			return
		}

		ip := NormalizeIP(c.ClientIP())
		if strings.HasPrefix(ip, prefix) {
			log.Warn("request from blocked network", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			httperr.Abort(c, http.StatusForbidden, "forbidden_origin", "Access denied.")
			return
		}
		c.Next()
	}
}

// NormalizeIP maps IPv6 loopback and IPv4-mapped addresses to dotted IPv4.
func NormalizeIP(raw string) string {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return raw
	}
	if addr == netip.IPv6Loopback() {
		return "127.0.0.1"
	}
	return addr.Unmap().String()
}

package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the originating address for per-caller rate limiting.
// Proxy headers win over the socket address so limits apply to the caller,
// not to the proxy in front of it.
func clientIP(c *gin.Context) string {
	// X-Forwarded-For accumulates one entry per hop; the first is the client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	// RemoteAddr is "ip:port" for TCP listeners.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}

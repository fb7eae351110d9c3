// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the client IP used as the guest rate-limit identifier.
// The service runs behind proxies/CDNs in every deployment, so the remote
// socket address is rarely the real client; the forwarding headers are
// consulted in a fixed order instead.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/govasco/go-trip-backend/internal/sysutil"
)

// ClientIP resolves the originating client address for c.
//
// Header precedence:
//  1. X-Forwarded-For (first address in the list)
//  2. X-Real-IP
//  3. CF-Connecting-IP
//
// When none is present, it returns "unknown": anonymous clients without any
// forwarding header share one rate-limit bucket rather than escaping limits.
func ClientIP(c *gin.Context) string {
	if v := c.GetHeader("X-Forwarded-For"); v != "" {
		first := v
		if i := strings.IndexByte(v, ','); i >= 0 {
			first = v[:i]
		}
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := sysutil.FirstNonEmpty(c.GetHeader("X-Real-IP"), c.GetHeader("CF-Connecting-IP")); ip != "" {
		return strings.TrimSpace(ip)
	}
	return "unknown"
}

package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "care-coordination/pkg/errors"
	"care-coordination/pkg/response"
)

// RateLimit throttles per client. Keyed by organization when the caller
// is already scoped, falling back to client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Organization-ID")
		if key == "" {
			key = clientIP(c)
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.Error(c, pkgErrors.NewHTTPError(429, "rate limit exceeded"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
	return ip
}

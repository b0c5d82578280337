package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/JadenRazo/showersautodetailing/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware applies rate limiting to every route, classified by path
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isExemptPath(c.FullPath()) {
			c.Next()
			return
		}

		clientIP := getClientIP(c)
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// Redis trouble must not take the API down
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

// isExemptPath excludes endpoints that must never be throttled. Square
// redelivers webhooks in bursts; a 429 only delays reconciliation.
func isExemptPath(path string) bool {
	return strings.HasSuffix(path, "/payments/webhook")
}

func getRateLimitType(path string) RateLimitType {
	switch {
	// Authentication endpoints get the tightest budget
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	// Quote submissions are the spam magnet on a public site
	case strings.Contains(path, "/quotes"):
		return RateLimitTypeQuote

	// Booking creation and payment endpoints
	case strings.Contains(path, "/bookings"),
		strings.Contains(path, "/payments"):
		return RateLimitTypeBooking

	// Public catalog browsing
	case strings.Contains(path, "/addons"),
		strings.Contains(path, "/services"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}

// getClientIP extracts the real client IP
func getClientIP(c *gin.Context) string {
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the settings for the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists origins permitted to make cross-origin requests.
	// ["*"] allows any origin.
	AllowOrigins []string

	// AllowMethods lists HTTP methods permitted on cross-origin requests.
	AllowMethods []string

	// AllowHeaders lists request headers permitted on cross-origin requests.
	AllowHeaders []string

	// AllowCredentials permits cookies and authorization headers. With
	// credentials the wildcard origin is never sent; the request origin is
	// echoed instead.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge string
}

// DefaultCORSConfig returns a permissive configuration for development.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           "86400",
	}
}

// CORS returns a CORS middleware with the permissive development defaults.
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig returns a gin middleware that answers cross-origin requests
// per cfg. Requests from origins outside the allow list pass through without
// any CORS headers, which makes the browser block the response. Preflight
// OPTIONS requests are answered with 204.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		// Responses differ by Origin, so caches must key on it.
		c.Writer.Header().Add("Vary", "Origin")

		allowed, ok := resolveOrigin(&cfg, origin)
		if !ok {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", cfg.MaxAge)
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveOrigin decides the Access-Control-Allow-Origin value for a request
// origin. The second return is false when the origin is not allowed.
func resolveOrigin(cfg *CORSConfig, origin string) (string, bool) {
	for _, a := range cfg.AllowOrigins {
		if a == "*" {
			if cfg.AllowCredentials {
				return origin, true
			}
			return "*", true
		}
		if a == origin {
			return origin, true
		}
	}
	return "", false
}

package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests so a browser
// frontend on another origin can talk to the API.
//
// SECURITY: This middleware is strict about allowed origins:
// - Explicit origins from CORS_ALLOWED_ORIGINS (comma-separated)
// - Development: Allows localhost (disabled in production)
func CORSMiddleware() gin.HandlerFunc {
	// Determine if we're in production mode
	isProduction := os.Getenv("GIN_MODE") == "release"

	// Explicitly configured origins (always allowed)
	configuredOrigins := map[string]bool{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			configuredOrigins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Development domains (only in non-production mode)
		devOrigins := map[string]bool{
			"http://localhost:3000": true,
			"http://127.0.0.1:3000": true,
			"http://localhost:3001": true,
		}

		var isAllowed bool

		if configuredOrigins[origin] {
			isAllowed = true
		}

		// Check development origins (ONLY in development mode)
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Empty origin (same-origin requests) - allow
		if origin == "" {
			isAllowed = true
		}

		// === SECURITY: Only set headers if origin is allowed ===
		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}
		// If not allowed, no CORS headers are sent - browser will block the request

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}

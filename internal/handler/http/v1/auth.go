package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware guards mutating routes with a static API key.
// With no keys configured the middleware is a no-op, so local
// development works without credentials.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		for _, key := range cfg.APIKeys {
			if key == apiKey {
				c.Next()
				return
			}
		}

		log.Warn("Invalid API key provided")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	}
}

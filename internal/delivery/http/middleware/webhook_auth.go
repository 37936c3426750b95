package middleware

import (
	"crypto/subtle"
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// SecretTokenHeader carries the shared secret the platform echoes back on
// every webhook delivery.
const SecretTokenHeader = "X-Bot-Api-Secret-Token"

// WebhookAuth rejects webhook calls that do not carry the configured secret.
func WebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			response.Error(c, http.StatusUnauthorized, "Invalid webhook secret", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

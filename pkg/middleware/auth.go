package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/pkg/metrics"
)

// APIKeyContextKey is the gin context key the validated key info is stored
// under for downstream handlers.
const APIKeyContextKey = "api_key"

// KeyValidator is the minimal interface the middleware depends on
type KeyValidator interface {
	Validate(ctx context.Context, raw string) (*models.KeyInfo, error)
}

// RequireAPIKey returns a Gin middleware that authenticates requests using
// the provided validator. The credential is taken from, in order:
// "Authorization: ApiKey <secret>", the X-API-KEY header, or the api_key
// query parameter. A missing credential is passed through as an empty
// string so the validator reports the uniform "No key provided" reason.
func RequireAPIKey(v KeyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := v.Validate(c.Request.Context(), ExtractKey(c))
		if err != nil {
			metrics.AuthRequests.WithLabelValues("rejected").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "reason": err.Error()})
			return
		}
		metrics.AuthRequests.WithLabelValues("allowed").Inc()
		c.Set(APIKeyContextKey, info)
		c.Next()
	}
}

// ExtractKey pulls the raw secret out of the request; first match wins.
// The "ApiKey" prefix is case-sensitive.
func ExtractKey(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "ApiKey ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "ApiKey "))
	}
	if k := c.GetHeader("X-API-KEY"); k != "" {
		return k
	}
	return c.Query("api_key")
}

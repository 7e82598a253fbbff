package middlewares

import (
	"crypto/subtle"
	"net/http"

	"mediagate_api/tools"
	"mediagate_api/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// Gate decides whether a request may proceed, based on its method and
// the pre-shared secret it presents. It is a pure predicate: producing
// the 403 response is AuthMiddleware's job, so the gate stays
// independently testable.
type Gate struct {
	secret      string
	allowCreate bool
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// NewGateWithCreate also treats POST as a mutating method. Used when
// the development-only post creation endpoint is wired.
func NewGateWithCreate(secret string) *Gate {
	return &Gate{secret: secret, allowCreate: true}
}

// Authorize classifies the method: reads always pass, mutations require
// the presented header value to equal the configured secret, anything
// else is refused outright.
func (g *Gate) Authorize(method string, presented string) bool {
	switch method {
	case http.MethodGet:
		return true
	case http.MethodPut, http.MethodDelete:
		return g.secretMatches(presented)
	case http.MethodPost:
		return g.allowCreate && g.secretMatches(presented)
	default:
		return false
	}
}

func (g *Gate) secretMatches(presented string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(g.secret)) == 1
}

// Middleware to authenticate mutating requests against the shared secret.
func AuthMiddleware(logger tools.Logger, gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorize(c.Request.Method, c.GetHeader(types.AUTH_KEY_HEADER)) {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Forbidden - missing or invalid auth key",
				Labels: map[string]string{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				},
			})

			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}

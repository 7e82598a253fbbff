package tools

import (
	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// LogError records the underlying error and answers the client with an
// opaque message. Backend error detail goes to the log only; it must
// never reach a response body.
func LogError(logger Logger, c *gin.Context, status int, message string, err error) {
	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  err.Error(),
		Labels: map[string]string{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		},
	})

	c.JSON(status, gin.H{
		"error": message,
	})
}

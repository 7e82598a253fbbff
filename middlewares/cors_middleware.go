package middlewares

import (
	"net/http"

	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware annotates every response with the gateway's CORS
// policy and answers preflight requests directly with an empty 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+types.AUTH_KEY_HEADER)

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			c.Abort()
			return
		}

		c.Next()
	}
}

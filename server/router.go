package server

import (
	"net/http"
	"strings"

	"mediagate_api/config"
	"mediagate_api/db"
	"mediagate_api/handlers"
	"mediagate_api/middlewares"
	"mediagate_api/storage"
	"mediagate_api/tools"
	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gateway's HTTP surface: CORS on everything,
// the shared-secret gate on the API group, then the upload, feed, and
// media handlers.
func NewRouter(cfg *config.Config, logger tools.Logger, blobs storage.BlobStore, posts db.PostStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	devMode := cfg.Environment == types.ENVIRONMENT_DEVELOPMENT

	gate := middlewares.NewGate(cfg.AuthKeySecret)
	if devMode {
		gate = middlewares.NewGateWithCreate(cfg.AuthKeySecret)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(logger, gate))
	api.GET("/posts", handlers.GetPostsHandler(logger, posts))
	api.PUT("/upload", handlers.UploadHandler(logger, blobs))

	// Write endpoints reserved for non-production use.
	if devMode {
		api.POST("/posts", handlers.SubmitPostHandler(logger, posts))
		api.GET("/maintenance/orphans", handlers.GetOrphanedBlobsHandler(logger, posts, blobs))
	}

	r.GET("/media/*key", handlers.MediaHandler(logger, blobs))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}

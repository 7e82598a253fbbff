package main

import (
	"context"
	"log"

	"mediagate_api/app"
	"mediagate_api/config"
	"mediagate_api/db"
	"mediagate_api/server"
	"mediagate_api/storage"
	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Initialize the client bundle
	application, err := app.InitApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v\n", err)
	}

	// Check each component of the bundle
	if application.Logger == nil {
		log.Fatalf("Failed to initialize Cloud Logging client\n")
	}
	if application.Storage == nil {
		log.Fatalf("Failed to initialize Google Cloud Storage client\n")
	}
	if application.DB == nil {
		log.Fatalf("Failed to initialize Postgres connection\n")
	}

	if cfg.Environment != types.ENVIRONMENT_DEVELOPMENT {
		gin.SetMode(gin.ReleaseMode)
	}

	blobs := storage.NewGCSStore(application.Storage, cfg.Bucket)
	posts := db.NewPostgresStore(application.DB)

	r := server.NewRouter(cfg, application.Logger, blobs, posts)

	// Disable TrustedProxies feature
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalf("Failed to set trusted proxies: %v\n", err)
	}

	if err := r.Run(cfg.Host + ":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v\n", err)
	}
}

package app

import (
	"context"
	"fmt"

	"mediagate_api/config"
	"mediagate_api/db"
	"mediagate_api/types"

	"cloud.google.com/go/logging"
	gcs "cloud.google.com/go/storage"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func InitApp(ctx context.Context, cfg *config.Config) (*types.App, error) {
	// Initialize logging client
	loggingClient, err := logging.NewClient(ctx, cfg.ProjectId)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging client: %v", err)
	}
	logger := loggingClient.Logger("mediagate-api")

	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  "Logging client initialized successfully",
		Labels:   map[string]string{"status": "success"},
	})

	// Initialize the Storage client
	storageClient, err := gcs.NewClient(ctx)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error initializing Google Cloud Storage client",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	} else {
		logger.Log(logging.Entry{
			Severity: logging.Info,
			Payload:  "Storage client initialized successfully",
			Labels:   map[string]string{"status": "success"},
		})
	}

	// Connect to Postgres and bring the schema up to date
	database, err := sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error connecting to Postgres",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	}

	if err := db.Migrate(database); err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error running database migrations",
			Labels:   map[string]string{"error": err.Error()},
		})
		return nil, err
	} else {
		logger.Log(logging.Entry{
			Severity: logging.Info,
			Payload:  "Database migrated successfully",
			Labels:   map[string]string{"status": "success"},
		})
	}

	return &types.App{
		LogClient: loggingClient,
		Logger:    logger,
		Storage:   storageClient,
		DB:        database,
	}, nil
}

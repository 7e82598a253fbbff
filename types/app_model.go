package types

import (
	"cloud.google.com/go/logging"
	"cloud.google.com/go/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	LogClient *logging.Client
	Logger    *logging.Logger
	Storage   *storage.Client
	DB        *sqlx.DB
}

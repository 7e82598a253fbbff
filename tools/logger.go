package tools

import (
	"cloud.google.com/go/logging"
)

// Logger is the subset of the Cloud Logging client the handlers use.
// *logging.Logger satisfies it; tests substitute a no-op sink.
type Logger interface {
	Log(e logging.Entry)
}

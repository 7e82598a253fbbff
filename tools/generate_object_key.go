package tools

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateObjectKey builds a storage key for an uploaded file:
// "<unix-millis>-<uuid>-<filename>". The random component is what makes
// collisions between concurrent uploads statistically negligible; the
// timestamp prefix keeps keys roughly sorted by creation time for ops.
func GenerateObjectKey(filename string) (string, error) {
	// Generate a UUID
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)

	return millis + "-" + id.String() + "-" + SanitizeFilename(filename), nil
}

// SanitizeFilename strips path separators and parent references from a
// client-supplied filename. Keys are served back under /media/<key>, so
// the original name must not be able to escape that namespace.
func SanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, "..", "")

	if name == "" || name == "." || name == "/" {
		return "file"
	}

	return name
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"mediagate_api/storage"
	"mediagate_api/tools"

	"github.com/gin-gonic/gin"
)

// MediaHandler resolves a key to stored bytes and streams them back
// with the stored content type. Stored objects are immutable, so the
// response is cacheable for a year.
func MediaHandler(logger tools.Logger, blobs storage.BlobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if !validKey(key) {
			c.Status(http.StatusNotFound)
			return
		}

		obj, err := blobs.Get(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.Status(http.StatusNotFound)
				return
			}
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to read object", err)
			return
		}
		defer obj.Body.Close()

		c.Header("Cache-Control", "public, max-age=31536000")
		c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
	}
}

// The key comes straight off the request path and is otherwise opaque;
// refuse anything that could escape the media namespace before it
// reaches the blob store.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

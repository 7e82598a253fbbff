package handlers

import (
	"net/http"
	"strings"

	"mediagate_api/db"
	"mediagate_api/storage"
	"mediagate_api/tools"
	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

// GetOrphanedBlobsHandler lists blob keys that no post references. The
// upload flow writes the blob before any metadata record exists, so a
// crash between the two steps leaves such orphans behind; this endpoint
// makes the gap observable instead of pretending atomicity.
func GetOrphanedBlobsHandler(logger tools.Logger, posts db.PostStore, blobs storage.BlobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys, err := blobs.List(c.Request.Context())
		if err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to list objects", err)
			return
		}

		list, err := posts.ListPosts(c.Request.Context())
		if err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to fetch posts", err)
			return
		}

		referenced := make(map[string]bool)
		for _, post := range list {
			for _, u := range post.MediaUrls {
				referenced[keyFromMediaURL(u)] = true
			}
		}

		orphans := []string{}
		for _, key := range keys {
			if !referenced[key] {
				orphans = append(orphans, key)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"orphans": orphans,
		})
	}
}

// media_urls entries are public URLs of the form <origin>/media/<key>,
// but bare keys are tolerated too.
func keyFromMediaURL(u string) string {
	if idx := strings.LastIndex(u, types.MEDIA_PATH_PREFIX); idx >= 0 {
		return u[idx+len(types.MEDIA_PATH_PREFIX):]
	}
	return u
}

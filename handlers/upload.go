package handlers

import (
	"net/http"

	"mediagate_api/storage"
	"mediagate_api/tools"
	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts a multipart upload, writes it to the blob store
// under a generated key, and returns the key plus a public URL that
// routes back through the media handler.
//
// The blob is written without creating a metadata record; a crash after
// Put leaves an orphaned blob (see the maintenance handler). That gap
// is accepted: there is no transaction spanning the two stores.
func UploadHandler(logger tools.Logger, blobs storage.BlobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			tools.LogError(logger, c, http.StatusBadRequest, "No file provided", err)
			return
		}
		defer file.Close()

		// The client declares filename and content type as form fields;
		// fall back to what the file part itself carries.
		filename := c.PostForm("filename")
		if filename == "" {
			filename = header.Filename
		}
		contentType := c.PostForm("contentType")
		if contentType == "" {
			contentType = header.Header.Get("Content-Type")
		}

		fileKey, err := tools.GenerateObjectKey(filename)
		if err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to upload object", err)
			return
		}

		if err := blobs.Put(c.Request.Context(), fileKey, file, contentType); err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to upload object", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"fileKey":   fileKey,
			"publicUrl": requestOrigin(c) + types.MEDIA_PATH_PREFIX + fileKey,
			"message":   "Object " + fileKey + " uploaded successfully!",
		})
	}
}

// requestOrigin reconstructs the scheme and host the client used, so
// public URLs point back through the gateway rather than at the bucket.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

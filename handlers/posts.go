package handlers

import (
	"net/http"

	"mediagate_api/db"
	"mediagate_api/tools"
	"mediagate_api/types"

	"github.com/gin-gonic/gin"
)

// GetPostsHandler returns the whole media feed, newest first, wrapped
// in a posts envelope.
func GetPostsHandler(logger tools.Logger, posts db.PostStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := posts.ListPosts(c.Request.Context())
		if err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to fetch posts", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"posts": list,
		})
	}
}

// SubmitPostHandler creates a metadata record directly. Only wired in
// development; production posts are expected to come from the upload
// pipeline.
func SubmitPostHandler(logger tools.Logger, posts db.PostStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in types.NewPost
		if err := c.ShouldBindJSON(&in); err != nil {
			tools.LogError(logger, c, http.StatusBadRequest, "Invalid post body", err)
			return
		}

		post, err := posts.InsertPost(c.Request.Context(), in)
		if err != nil {
			tools.LogError(logger, c, http.StatusInternalServerError, "Failed to create post", err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

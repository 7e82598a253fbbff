package types

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	Id          string         `db:"id" json:"id"`
	Content     string         `db:"content" json:"content"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	MediaUrls   pq.StringArray `db:"media_urls" json:"media_urls"`
	MediaTypes  pq.StringArray `db:"media_types" json:"media_types"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// NewPost carries the caller-supplied fields of a post; the id and the
// timestamps are assigned by the metadata store on insert.
type NewPost struct {
	Content     string   `json:"content"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	MediaUrls   []string `json:"media_urls"`
	MediaTypes  []string `json:"media_types"`
}

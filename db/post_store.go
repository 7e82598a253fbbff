package db

import (
	"context"
	"time"

	"mediagate_api/types"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostStore is the gateway's view of the relational metadata store.
type PostStore interface {
	// ListPosts returns every post, newest created_at first.
	ListPosts(ctx context.Context) ([]types.Post, error)
	InsertPost(ctx context.Context, in types.NewPost) (*types.Post, error)
}

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListPosts(ctx context.Context) ([]types.Post, error) {
	posts := []types.Post{}

	err := s.db.SelectContext(ctx, &posts,
		`SELECT id, content, title, description, tags, media_urls, media_types, created_at, updated_at
		 FROM posts
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *PostgresStore) InsertPost(ctx context.Context, in types.NewPost) (*types.Post, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := types.Post{
		Id:          id.String(),
		Content:     in.Content,
		Title:       in.Title,
		Description: in.Description,
		Tags:        toArray(in.Tags),
		MediaUrls:   toArray(in.MediaUrls),
		MediaTypes:  toArray(in.MediaTypes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO posts (id, content, title, description, tags, media_urls, media_types, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		post.Id, post.Content, post.Title, post.Description,
		post.Tags, post.MediaUrls, post.MediaTypes,
		post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Array columns are NOT NULL; a nil slice would otherwise write NULL.
func toArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

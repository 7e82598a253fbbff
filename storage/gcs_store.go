package storage

import (
	"context"
	"errors"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore keeps blobs as objects in a single Google Cloud Storage
// bucket, keyed by the generated object name.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{
		client: client,
		bucket: bucket,
	}
}

// Put streams body into the bucket under key. GCS only commits the
// object when the writer closes cleanly, so a failed or cancelled
// upload never leaves a readable partial blob behind.
func (s *GCSStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	sw := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	sw.ContentType = contentType

	if _, err := io.Copy(sw, body); err != nil {
		return err
	}

	return sw.Close()
}

func (s *GCSStore) Get(ctx context.Context, key string) (*Object, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &Object{
		Body:        r,
		ContentType: r.Attrs.ContentType,
		Size:        r.Attrs.Size,
	}, nil
}

func (s *GCSStore) List(ctx context.Context) ([]string, error) {
	var keys []string

	it := s.client.Bucket(s.bucket).Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, attrs.Name)
	}

	return keys, nil
}

// Package receipt stores kiosk return receipts and stamps them as returned.
package receipt

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
)

// LocalStore keeps receipts on disk under dir. The returned reference is
// relative to the upload root so it can be prefixed with the public domain.
type LocalStore struct {
	dir    string
	prefix string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create receipt dir")
	}
	return &LocalStore{dir: dir, prefix: filepath.Base(dir)}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", errors.New("empty receipt name")
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "write receipt")
	}
	return path.Join(s.prefix, name), nil
}

// GCSStore uploads receipts to a Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("receipt bucket is not set")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create storage client")
	}
	return &GCSStore{client: client, bucket: bucket, prefix: "receipts"}, nil
}

func (s *GCSStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	object := path.Join(s.prefix, path.Base(name))
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType(name)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "write GCS object")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close GCS writer")
	}
	return "https://storage.googleapis.com/" + s.bucket + "/" + object, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func contentType(name string) string {
	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}

package blob

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/poplandstore/popland-backend/internal/config"
)

// MinioStore stores product images in an S3-compatible bucket.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore connects to the configured object-storage endpoint.
func NewMinioStore(cfg config.BlobConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blob client: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *MinioStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

func (s *MinioStore) Delete(ctx context.Context, rawURL string) error {
	return s.client.RemoveObject(ctx, s.bucket, s.objectName(rawURL), minio.RemoveObjectOptions{})
}

// objectName recovers the object key from a public URL. URLs produced by Put
// carry the base URL prefix; anything else falls back to path parsing.
func (s *MinioStore) objectName(rawURL string) string {
	if name, ok := strings.CutPrefix(rawURL, s.baseURL+"/"); ok {
		return name
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	name := strings.TrimPrefix(u.Path, "/")
	return strings.TrimPrefix(name, s.bucket+"/")
}

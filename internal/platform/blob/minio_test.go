package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poplandstore/popland-backend/internal/config"
)

func newTestStore(t *testing.T, cfg config.BlobConfig) *MinioStore {
	t.Helper()
	s, err := NewMinioStore(cfg)
	require.NoError(t, err)
	return s
}

func TestNewMinioStore_BuildsBaseURLFromEndpoint(t *testing.T) {
	s := newTestStore(t, config.BlobConfig{Endpoint: "localhost:9000", Bucket: "product-images"})
	assert.Equal(t, "http://localhost:9000/product-images", s.baseURL)

	s = newTestStore(t, config.BlobConfig{Endpoint: "blob.example.com", Bucket: "imgs", UseSSL: true})
	assert.Equal(t, "https://blob.example.com/imgs", s.baseURL)
}

func TestNewMinioStore_PublicBaseURLOverride(t *testing.T) {
	s := newTestStore(t, config.BlobConfig{
		Endpoint:      "localhost:9000",
		Bucket:        "product-images",
		PublicBaseURL: "https://cdn.example.com/images/",
	})
	assert.Equal(t, "https://cdn.example.com/images", s.baseURL)
}

func TestObjectName(t *testing.T) {
	s := newTestStore(t, config.BlobConfig{Endpoint: "localhost:9000", Bucket: "product-images"})

	assert.Equal(t, "widget-1-1700000000000.png",
		s.objectName("http://localhost:9000/product-images/widget-1-1700000000000.png"))

	// URLs recorded before a base-URL change still resolve via path parsing.
	assert.Equal(t, "widget-1-1700000000000.png",
		s.objectName("https://old-host/product-images/widget-1-1700000000000.png"))
}

package blob

import "context"

// Store is the object-storage capability consumed by the admin module.
// Put stores a named object and returns its public URL; Delete removes an
// object by the URL a previous Put returned.
type Store interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

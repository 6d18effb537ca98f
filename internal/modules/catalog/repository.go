package catalog

import "context"

// Repository defines read access to the product catalog.
type Repository interface {
	// ListTags returns every tag, ordered by id.
	ListTags(ctx context.Context) ([]*Tag, error)

	// ListProducts returns enriched products ordered by creation time
	// descending. A non-empty tagIDs set restricts the result to products
	// having at least one matching tag association.
	ListProducts(ctx context.Context, tagIDs []int64) ([]*Product, error)

	// GetProduct returns one enriched product, or nil when no row matches.
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

package catalog

import "context"

// Service defines the catalog read operations consumed by the storefront and
// the admin listing.
type Service interface {
	// ListProducts resolves tag slugs to ids and returns the matching
	// products together with the full tag list. Unmatched slugs are silently
	// dropped; with no surviving slug the listing is unfiltered.
	ListProducts(ctx context.Context, selectedTagSlugs []string) ([]*Product, []*Tag, error)

	// GetProduct returns one product (nil when absent) and the full tag list.
	GetProduct(ctx context.Context, id int64) (*Product, []*Tag, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, selectedTagSlugs []string) ([]*Product, []*Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.repo.ListProducts(ctx, tagIDsForSlugs(selectedTagSlugs, tags))
	if err != nil {
		return nil, nil, err
	}
	return products, tags, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, []*Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return product, tags, nil
}

func tagIDsForSlugs(slugs []string, tags []*Tag) []int64 {
	bySlug := make(map[string]int64, len(tags))
	for _, t := range tags {
		bySlug[t.Slug] = t.ID
	}
	var ids []int64
	for _, slug := range slugs {
		if id, ok := bySlug[slug]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

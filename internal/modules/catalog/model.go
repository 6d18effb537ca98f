package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tag is pre-seeded reference data; the application never writes tags.
type Tag struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog product enriched with its child collections.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Images      []*ProductImage `json:"product_images"`
	Tags        []*ProductTag   `json:"product_tags"`
	SubProducts []*SubProduct   `json:"sub_products"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductImage points at an object in blob storage.
type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
}

// ProductTag is a join row linking one product to one tag.
type ProductTag struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	TagID     int64 `json:"tag_id"`
}

// SubProduct is a named variant under a parent product, not a separately
// purchasable catalog entry.
type SubProduct struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Available bool            `json:"available"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

package admin

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the write surface for product administration. The
// service sequences these calls; no method spans more than one statement.
type Repository interface {
	InsertProduct(ctx context.Context, name string, price decimal.Decimal) (int64, error)
	UpdateProductName(ctx context.Context, productID int64, name string) error
	DeleteProduct(ctx context.Context, productID int64) error

	InsertImages(ctx context.Context, productID int64, images []*UploadedImage) error
	DeleteImages(ctx context.Context, imageIDs []int64) error
	DeleteProductImages(ctx context.Context, productID int64) error
	ProductImageURLs(ctx context.Context, productID int64) ([]string, error)

	InsertTags(ctx context.Context, productID int64, tagIDs []int64) error
	DeleteProductTags(ctx context.Context, productID int64) error

	InsertSubProducts(ctx context.Context, productID int64, subs []*SubProductRow) error
	DeleteProductSubProducts(ctx context.Context, productID int64) error
}

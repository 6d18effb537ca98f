package admin

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) InsertProduct(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id`,
		name, price).Scan(&id)
	return id, err
}

func (r *postgresRepo) UpdateProductName(ctx context.Context, productID int64, name string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, updated_at=NOW() WHERE id=$2`, name, productID)
	return err
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, productID)
	return err
}

func (r *postgresRepo) InsertImages(ctx context.Context, productID int64, images []*UploadedImage) error {
	if len(images) == 0 {
		return nil
	}
	values := make([]string, 0, len(images))
	args := make([]interface{}, 0, len(images)*4)
	n := 1
	for _, img := range images {
		values = append(values, fmt.Sprintf("($%d,$%d,$%d,$%d)", n, n+1, n+2, n+3))
		args = append(args, productID, img.Name, img.URL, img.Alt)
		n += 4
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_images (product_id, name, url, alt) VALUES `+strings.Join(values, ","), args...)
	return err
}

func (r *postgresRepo) DeleteImages(ctx context.Context, imageIDs []int64) error {
	if len(imageIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM product_images WHERE id = ANY($1)`, pq.Array(imageIDs))
	return err
}

func (r *postgresRepo) DeleteProductImages(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM product_images WHERE product_id=$1`, productID)
	return err
}

func (r *postgresRepo) ProductImageURLs(ctx context.Context, productID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT url FROM product_images WHERE product_id=$1`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

func (r *postgresRepo) InsertTags(ctx context.Context, productID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	values := make([]string, 0, len(tagIDs))
	args := make([]interface{}, 0, len(tagIDs)*2)
	n := 1
	for _, tagID := range tagIDs {
		values = append(values, fmt.Sprintf("($%d,$%d)", n, n+1))
		args = append(args, productID, tagID)
		n += 2
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_tags (product_id, tag_id) VALUES `+strings.Join(values, ","), args...)
	return err
}

func (r *postgresRepo) DeleteProductTags(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM product_tags WHERE product_id=$1`, productID)
	return err
}

func (r *postgresRepo) InsertSubProducts(ctx context.Context, productID int64, subs []*SubProductRow) error {
	if len(subs) == 0 {
		return nil
	}
	values := make([]string, 0, len(subs))
	args := make([]interface{}, 0, len(subs)*5)
	n := 1
	for _, sp := range subs {
		values = append(values, fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)", n, n+1, n+2, n+3, n+4))
		args = append(args, productID, sp.Name, sp.Available, sp.Quantity, sp.Price)
		n += 5
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sub_products (product_id, name, available, quantity, price) VALUES `+strings.Join(values, ","), args...)
	return err
}

func (r *postgresRepo) DeleteProductSubProducts(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sub_products WHERE product_id=$1`, productID)
	return err
}

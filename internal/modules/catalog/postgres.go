package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListTags(ctx context.Context) ([]*Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slug, name, created_at, updated_at
		FROM tags ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *postgresRepo) ListProducts(ctx context.Context, tagIDs []int64) ([]*Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(tagIDs) > 0 {
		// The database does the tag selectivity; DISTINCT collapses products
		// matching more than one of the requested tags.
		rows, err = r.db.QueryContext(ctx, `
			SELECT DISTINCT p.id, p.name, p.price, p.created_at, p.updated_at
			FROM products p
			JOIN product_tags pt ON pt.product_id = p.id
			WHERE pt.tag_id = ANY($1)
			ORDER BY p.created_at DESC`, pq.Array(tagIDs))
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, name, price, created_at, updated_at
			FROM products ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	byID := map[int64]*Product{}
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}
	if err := r.attachChildren(ctx, byID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Absence is not a fault; the caller surfaces not-found.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachChildren(ctx, map[int64]*Product{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

// attachChildren loads images, tag associations, and sub-products for every
// product in byID with one query per child table.
func (r *postgresRepo) attachChildren(ctx context.Context, byID map[int64]*Product) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, name, url, alt
		FROM product_images WHERE product_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		img := &ProductImage{}
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Name, &img.URL, &img.Alt); err != nil {
			return err
		}
		byID[img.ProductID].Images = append(byID[img.ProductID].Images, img)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT id, product_id, tag_id
		FROM product_tags WHERE product_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		pt := &ProductTag{}
		if err := rows.Scan(&pt.ID, &pt.ProductID, &pt.TagID); err != nil {
			return err
		}
		byID[pt.ProductID].Tags = append(byID[pt.ProductID].Tags, pt)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT id, product_id, name, available, quantity, price
		FROM sub_products WHERE product_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		sp := &SubProduct{}
		if err := rows.Scan(&sp.ID, &sp.ProductID, &sp.Name, &sp.Available, &sp.Quantity, &sp.Price); err != nil {
			return err
		}
		byID[sp.ProductID].SubProducts = append(byID[sp.ProductID].SubProducts, sp)
	}
	return rows.Err()
}

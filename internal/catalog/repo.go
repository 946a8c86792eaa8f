package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repo reads the catalog tables once at start; see migrations/0001_catalog.sql.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Load(ctx context.Context) (*Catalog, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name_en, name_km, name_ch
	                                FROM categories ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name.EN, &c.Name.KM, &c.Name.CH); err != nil {
			rows.Close()
			return nil, err
		}
		cats = append(cats, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// price lewat text supaya decimal tidak lewat float
	rows, err = r.DB.Query(ctx, `SELECT id, name_en, name_km, name_ch, price::text, category_id, image
	                               FROM products ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p     Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name.EN, &p.Name.KM, &p.Name.CH, &price, &p.Category, &p.Image); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("product %s price %q: %w", p.ID, price, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(cats, products)
}

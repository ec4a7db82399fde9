package product

import (
	"context"
	"errors"
	"io"
	"log"

	"daddybathbomb/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, name, COALESCE(description, ''), price_satang, currency, stock_quantity,
COALESCE(category, ''), COALESCE(scent, ''), COALESCE(weight_grams, 0), ingredients, image_urls, created_at`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, int, error) {
	const q = `
SELECT ` + productColumns + `, COUNT(*) OVER () AS total
FROM products
WHERE ($1 = '' OR category = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
OFFSET $3 LIMIT $4
`
	rows, err := r.pool.Query(ctx, q, f.Category, f.Search, f.Offset, f.Limit)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	var total int
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceSatang, &p.Currency, &p.StockQuantity,
			&p.Category, &p.Scent, &p.WeightGrams, &p.Ingredients, &p.ImageURLs, &p.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, 0, err
	}
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceSatang, &p.Currency,
		&p.StockQuantity, &p.Category, &p.Scent, &p.WeightGrams, &p.Ingredients, &p.ImageURLs, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, description, price_satang, currency, stock_quantity, category, scent, weight_grams, ingredients, image_urls)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, 0), COALESCE($10, '[]'::jsonb), COALESCE($11, '[]'::jsonb))
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price_satang = EXCLUDED.price_satang,
    currency = EXCLUDED.currency,
    stock_quantity = EXCLUDED.stock_quantity,
    category = EXCLUDED.category,
    scent = EXCLUDED.scent,
    weight_grams = EXCLUDED.weight_grams,
    ingredients = EXCLUDED.ingredients,
    image_urls = EXCLUDED.image_urls
RETURNING id::text, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.PriceSatang, p.Currency, p.StockQuantity,
		p.Category, p.Scent, p.WeightGrams, p.Ingredients, p.ImageURLs,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted name=%q id=%s", res.Name, res.ID)
	return &res, nil
}

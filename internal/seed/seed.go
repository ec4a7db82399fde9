package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"daddybathbomb/internal/domain"
	"daddybathbomb/internal/service/banner"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	PriceSatang int64
	Stock       int
	Category    string
	Scent       string
	WeightGrams int
	Ingredients []string
	ImageURLs   []string
}

// Apply inserts demo catalog data and the default banner rotation for
// manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Galaxy Fizz",
			Description: "Deep purple swirls with a shimmer finish",
			PriceSatang: 15000,
			Stock:       40,
			Category:    "fizzy",
			Scent:       "blackcurrant",
			WeightGrams: 120,
			Ingredients: []string{"baking soda", "citric acid", "shea butter"},
			ImageURLs:   []string{"https://cdn.daddybathbomb.example/products/galaxy-fizz.jpg"},
		},
		{
			Name:        "Tropical Splash",
			Description: "Mango and coconut burst for a beach-day soak",
			PriceSatang: 12000,
			Stock:       60,
			Category:    "fruity",
			Scent:       "mango",
			WeightGrams: 110,
			Ingredients: []string{"baking soda", "citric acid", "coconut oil"},
			ImageURLs:   []string{"https://cdn.daddybathbomb.example/products/tropical-splash.jpg"},
		},
		{
			Name:        "Lavender Dreams",
			Description: "Calming lavender with oat milk",
			PriceSatang: 13500,
			Stock:       35,
			Category:    "calming",
			Scent:       "lavender",
			WeightGrams: 115,
			Ingredients: []string{"baking soda", "citric acid", "lavender oil", "oat milk"},
			ImageURLs:   []string{"https://cdn.daddybathbomb.example/products/lavender-dreams.jpg"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	for _, b := range banner.Defaults() {
		if err := upsertBanner(ctx, pool, b); err != nil {
			return fmt.Errorf("upsert banner %d: %w", b.DisplayOrder, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	ingredients, err := json.Marshal(p.Ingredients)
	if err != nil {
		return err
	}
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO products (name, description, price_satang, currency, stock_quantity, category, scent, weight_grams, ingredients, image_urls)
VALUES ($1, $2, $3, 'THB', $4, $5, $6, $7, $8, $9)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price_satang = EXCLUDED.price_satang,
    stock_quantity = EXCLUDED.stock_quantity,
    category = EXCLUDED.category,
    scent = EXCLUDED.scent,
    weight_grams = EXCLUDED.weight_grams,
    ingredients = EXCLUDED.ingredients,
    image_urls = EXCLUDED.image_urls
`
	_, err = pool.Exec(ctx, q, p.Name, p.Description, p.PriceSatang, p.Stock, p.Category, p.Scent, p.WeightGrams, ingredients, images)
	return err
}

func upsertBanner(ctx context.Context, pool *pgxpool.Pool, b domain.HeroBanner) error {
	const q = `
INSERT INTO hero_banners (main_title, sub_title, description, tagline, primary_btn, secondary_btn, image_url, icon_name, icon_color, is_active, display_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (display_order) DO NOTHING
`
	_, err := pool.Exec(ctx, q,
		b.MainTitle, b.SubTitle, b.Description, b.Tagline,
		b.PrimaryBtn, b.SecondaryBtn, b.ImageURL,
		b.IconName, b.IconColor, b.IsActive, b.DisplayOrder)
	return err
}

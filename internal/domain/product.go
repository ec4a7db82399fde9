package domain

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PriceSatang   int64     `json:"priceSatang"`
	Currency      string    `json:"currency"`
	StockQuantity int       `json:"stockQuantity"`
	Category      string    `json:"category,omitempty"`
	Scent         string    `json:"scent,omitempty"`
	WeightGrams   int       `json:"weightGrams,omitempty"`
	Ingredients   []string  `json:"ingredients,omitempty"`
	ImageURLs     []string  `json:"imageUrls,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

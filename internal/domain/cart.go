package domain

// CartItem associates a product with a desired purchase quantity.
// A cart never holds two items for the same product id, and a stored
// quantity is always >= 1; quantity updates to zero or below remove
// the item instead.
type CartItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	PriceSatang int64  `json:"priceSatang"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Cart is the per-token view returned to callers. TotalItems and
// TotalSatang are derived from Items on every read, never stored.
type Cart struct {
	Token       string     `json:"token"`
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalSatang int64      `json:"totalSatang"`
}

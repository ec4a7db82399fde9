package product

import (
	"context"

	"daddybathbomb/internal/domain"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

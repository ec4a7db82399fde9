package banner

import (
	"context"

	"daddybathbomb/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.HeroBanner, error)
	Upsert(ctx context.Context, b domain.HeroBanner) (*domain.HeroBanner, error)
	SetActive(ctx context.Context, displayOrder int, active bool) error
}

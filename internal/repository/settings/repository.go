package settings

import (
	"context"

	"daddybathbomb/internal/domain"
)

type Repository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context, prefix string) ([]domain.Setting, error)
	Set(ctx context.Context, key, value string) (*domain.Setting, error)
	// SetMany upserts all pairs in one transaction; partial branding
	// updates are never observable.
	SetMany(ctx context.Context, pairs map[string]string) error
}

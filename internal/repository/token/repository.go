package token

import (
	"context"
	"time"
)

type RefreshToken struct {
	Token      string
	CustomerID string
	ExpiresAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, t RefreshToken) error
	Get(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

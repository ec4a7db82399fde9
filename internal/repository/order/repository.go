package order

import (
	"context"

	"daddybathbomb/internal/domain"
)

type Repository interface {
	// CreateWithItems persists the order header and every item inside a
	// single transaction, so a failed item write can never leave an
	// orphaned header behind.
	CreateWithItems(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

package cartsnap

import "context"

// Repository stores the raw JSON snapshot the cart store writes through
// after every mutation. The snapshot is a durability aid only: in-memory
// state wins during a session, and an unparseable snapshot is treated as
// an empty cart by the caller.
type Repository interface {
	Load(ctx context.Context, token string) ([]byte, error)
	Store(ctx context.Context, token string, items []byte) error
	Delete(ctx context.Context, token string) error
}

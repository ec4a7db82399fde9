package cartsnap

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

func (r *postgresRepo) Load(ctx context.Context, token string) ([]byte, error) {
	const q = `
SELECT items
FROM cart_snapshots
WHERE token = $1
`
	var items []byte
	if err := r.pool.QueryRow(ctx, q, token).Scan(&items); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("cartsnap repo: load token=%s error=%v", token, err)
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Store(ctx context.Context, token string, items []byte) error {
	const q = `
INSERT INTO cart_snapshots (token, items)
VALUES ($1, $2)
ON CONFLICT (token) DO UPDATE SET
    items = EXCLUDED.items,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, token, items); err != nil {
		r.logger.Printf("cartsnap repo: store token=%s error=%v", token, err)
		return err
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, token string) error {
	const q = `
DELETE FROM cart_snapshots
WHERE token = $1
`
	if _, err := r.pool.Exec(ctx, q, token); err != nil {
		r.logger.Printf("cartsnap repo: delete token=%s error=%v", token, err)
		return err
	}
	return nil
}

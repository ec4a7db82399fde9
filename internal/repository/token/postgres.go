package token

import (
	"context"
	"errors"

	"daddybathbomb/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, t RefreshToken) error {
	const q = `
INSERT INTO refresh_tokens (token, customer_id, expires_at)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, t.Token, t.CustomerID, t.ExpiresAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, token string) (*RefreshToken, error) {
	const q = `
SELECT token, customer_id::text, expires_at
FROM refresh_tokens
WHERE token = $1
`
	var t RefreshToken
	if err := r.pool.QueryRow(ctx, q, token).Scan(&t.Token, &t.CustomerID, &t.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Delete(ctx context.Context, token string) error {
	const q = `
DELETE FROM refresh_tokens
WHERE token = $1
`
	_, err := r.pool.Exec(ctx, q, token)
	return err
}

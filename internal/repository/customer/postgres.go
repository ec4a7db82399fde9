package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"daddybathbomb/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (email, nickname, password_hash, is_admin)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.Email, c.Nickname, c.PasswordHash, c.IsAdmin).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: create email=%s error=%v", c.Email, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT id::text, email, nickname, password_hash, is_admin, created_at
FROM customers
WHERE email = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, email, nickname, password_hash, is_admin, created_at
FROM customers
WHERE id = $1
`
	return r.scan(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Email, &c.Nickname, &c.PasswordHash, &c.IsAdmin, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

package settings

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

func (r *postgresRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	const q = `
SELECT key, value, updated_at
FROM site_settings
WHERE key = $1
`
	var s domain.Setting
	if err := r.pool.QueryRow(ctx, q, key).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("settings repo: get key=%s error=%v", key, err)
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) List(ctx context.Context, prefix string) ([]domain.Setting, error) {
	const q = `
SELECT key, value, updated_at
FROM site_settings
WHERE $1 = '' OR key LIKE $1 || '%'
ORDER BY key ASC
`
	rows, err := r.pool.Query(ctx, q, prefix)
	if err != nil {
		r.logger.Printf("settings repo: list prefix=%s error=%v", prefix, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Set(ctx context.Context, key, value string) (*domain.Setting, error) {
	const q = `
INSERT INTO site_settings (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = now()
RETURNING key, value, updated_at
`
	var s domain.Setting
	if err := r.pool.QueryRow(ctx, q, key, value).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		r.logger.Printf("settings repo: set key=%s error=%v", key, err)
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO site_settings (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    updated_at = now()
`
	for key, value := range pairs {
		if _, err := tx.Exec(ctx, q, key, value); err != nil {
			r.logger.Printf("settings repo: set many key=%s error=%v", key, err)
			return err
		}
	}
	return tx.Commit(ctx)
}

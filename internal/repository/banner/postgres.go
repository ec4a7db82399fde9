package banner

import (
	"context"
	"io"
	"log"

	"daddybathbomb/internal/domain"
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

const bannerColumns = `id::text, main_title, sub_title, description, tagline, primary_btn, secondary_btn,
image_url, icon_name, icon_color, is_active, display_order, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.HeroBanner, error) {
	const q = `
SELECT ` + bannerColumns + `
FROM hero_banners
ORDER BY display_order ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("banner repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.HeroBanner
	for rows.Next() {
		var b domain.HeroBanner
		if err := rows.Scan(&b.ID, &b.MainTitle, &b.SubTitle, &b.Description, &b.Tagline,
			&b.PrimaryBtn, &b.SecondaryBtn, &b.ImageURL, &b.IconName, &b.IconColor,
			&b.IsActive, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("banner repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

// Upsert keys on display_order: a banner slot is rewritten in place
// rather than duplicated when an admin edits or reorders.
func (r *postgresRepo) Upsert(ctx context.Context, b domain.HeroBanner) (*domain.HeroBanner, error) {
	const q = `
INSERT INTO hero_banners (main_title, sub_title, description, tagline, primary_btn, secondary_btn,
                          image_url, icon_name, icon_color, is_active, display_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (display_order) DO UPDATE SET
    main_title = EXCLUDED.main_title,
    sub_title = EXCLUDED.sub_title,
    description = EXCLUDED.description,
    tagline = EXCLUDED.tagline,
    primary_btn = EXCLUDED.primary_btn,
    secondary_btn = EXCLUDED.secondary_btn,
    image_url = EXCLUDED.image_url,
    icon_name = EXCLUDED.icon_name,
    icon_color = EXCLUDED.icon_color,
    is_active = EXCLUDED.is_active,
    updated_at = now()
RETURNING ` + bannerColumns + `
`
	var out domain.HeroBanner
	err := r.pool.QueryRow(ctx, q,
		b.MainTitle, b.SubTitle, b.Description, b.Tagline, b.PrimaryBtn, b.SecondaryBtn,
		b.ImageURL, b.IconName, b.IconColor, b.IsActive, b.DisplayOrder,
	).Scan(&out.ID, &out.MainTitle, &out.SubTitle, &out.Description, &out.Tagline,
		&out.PrimaryBtn, &out.SecondaryBtn, &out.ImageURL, &out.IconName, &out.IconColor,
		&out.IsActive, &out.DisplayOrder, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		r.logger.Printf("banner repo: upsert order=%d error=%v", b.DisplayOrder, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) SetActive(ctx context.Context, displayOrder int, active bool) error {
	const q = `
UPDATE hero_banners
SET is_active = $1, updated_at = now()
WHERE display_order = $2
`
	cmd, err := r.pool.Exec(ctx, q, active, displayOrder)
	if err != nil {
		r.logger.Printf("banner repo: set active order=%d error=%v", displayOrder, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

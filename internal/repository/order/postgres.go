package order

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

const orderColumns = `id::text, number, customer_id::text, shipping_name, shipping_phone, shipping_address,
shipping_city, shipping_postcode, shipping_note, payment_method, status, total_satang, created_at`

func (r *postgresRepo) CreateWithItems(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const headerQ = `
INSERT INTO orders (number, customer_id, shipping_name, shipping_phone, shipping_address,
                    shipping_city, shipping_postcode, shipping_note, payment_method, status, total_satang)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id::text, created_at
`
	out := o
	if err := tx.QueryRow(ctx, headerQ,
		o.Number, o.CustomerID, o.Shipping.Name, o.Shipping.Phone, o.Shipping.Address,
		o.Shipping.City, o.Shipping.Postcode, o.Shipping.Note, o.PaymentMethod, o.Status, o.TotalSatang,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert header number=%s error=%v", o.Number, err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_satang, total_satang)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`
	out.Items = make([]domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		item.OrderID = out.ID
		if err := tx.QueryRow(ctx, itemQ,
			out.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitSatang, item.TotalSatang,
		).Scan(&item.ID); err != nil {
			r.logger.Printf("order repo: insert item order=%s product=%s error=%v", out.ID, item.ProductID, err)
			return nil, err
		}
		out.Items = append(out.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created number=%s items=%d total=%d", out.Number, len(out.Items), out.TotalSatang)
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}

	const itemsQ = `
SELECT id::text, order_id::text, product_id::text, product_name, quantity, unit_satang, total_satang
FROM order_items
WHERE order_id = $1
ORDER BY product_name ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitSatang, &item.TotalSatang); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		r.logger.Printf("order repo: list customer=%s error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
`
	cmd, err := r.pool.Exec(ctx, q, status, id)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.Number, &o.CustomerID, &o.Shipping.Name, &o.Shipping.Phone,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.Postcode, &o.Shipping.Note,
		&o.PaymentMethod, &o.Status, &o.TotalSatang, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
)

const orderColumns = `id, customer_email, status, total_amount, stripe_session_id, stripe_payment_intent_id, created_date, completed_date`

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	return r.getOrder(ctx, row)
}

func (r *orderRepository) GetOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE stripe_session_id = $1`, sessionID)
	return r.getOrder(ctx, row)
}

func (r *orderRepository) getOrder(ctx context.Context, row pgx.Row) (domain.Order, error) {
	var o domain.Order

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, fmt.Errorf("scanOrder: %w", ErrNotFound)
		}
		return o, fmt.Errorf("scanOrder: %w", err)
	}

	items, err := r.getOrderItems(ctx, order.ID)
	if err != nil {
		return o, fmt.Errorf("r.getOrderItems: %w", err)
	}
	order.Items = items

	return order, nil
}

// InsertOrder persists the order and its items as a single unit:
// either everything is written or nothing is.
func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var o domain.Order

	if len(order.Items) == 0 {
		return o, errors.New("no items in order")
	}

	inserted, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Order, error) {
		row := tx.QueryRow(ctx,
			`INSERT INTO orders (customer_email, status, total_amount, stripe_session_id, created_date)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+orderColumns,
			order.CustomerEmail, string(order.Status), order.TotalAmount, order.StripeSessionID, order.CreatedDate)

		created, err := scanOrder(row)
		if err != nil {
			return o, fmt.Errorf("scanOrder: %w", err)
		}

		// TODO: batch with pgx.Batch
		for _, item := range order.Items {
			var createdItem domain.OrderItem

			err := tx.QueryRow(ctx,
				`INSERT INTO order_items (order_id, product_id, product_name, price_at_purchase, quantity)
				 VALUES ($1, $2, $3, $4, $5)
				 RETURNING id, product_id, product_name, price_at_purchase, quantity`,
				created.ID, item.ProductID, item.ProductName, item.PriceAtPurchase, item.Quantity).
				Scan(&createdItem.ID, &createdItem.ProductID, &createdItem.ProductName, &createdItem.PriceAtPurchase, &createdItem.Quantity)
			if err != nil {
				return o, fmt.Errorf("tx.QueryRow order_items: %w", err)
			}

			created.Items = append(created.Items, createdItem)
		}

		return created, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return inserted, nil
}

func (r *orderRepository) CompleteOrder(ctx context.Context, orderID int64, paymentIntentID string) error {
	if orderID == 0 {
		return errors.New("orderID is empty")
	}

	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders
		 SET status = $2, completed_date = NOW(), stripe_payment_intent_id = $3
		 WHERE id = $1`,
		orderID, string(domain.OrderStatusCompleted), paymentIntentID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("CompleteOrder: %w", ErrNotFound)
	}

	return nil
}

func (r *orderRepository) FailOrder(ctx context.Context, orderID int64) error {
	if orderID == 0 {
		return errors.New("orderID is empty")
	}

	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		orderID, string(domain.OrderStatusFailed))
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("FailOrder: %w", ErrNotFound)
	}

	return nil
}

func (r *orderRepository) getOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, product_id, product_name, price_at_purchase, quantity
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.PriceAtPurchase, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o         domain.Order
		rawStatus string
	)

	err := row.Scan(&o.ID, &o.CustomerEmail, &rawStatus, &o.TotalAmount,
		&o.StripeSessionID, &o.StripePaymentIntentID, &o.CreatedDate, &o.CompletedDate)
	if err != nil {
		return o, err
	}

	status, err := domain.ToOrderStatus(rawStatus)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", rawStatus, err)
	}
	o.Status = status

	return o, nil
}

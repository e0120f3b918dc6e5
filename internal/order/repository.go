package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrInsufficientStock fails the whole commit; nothing is written.
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, userID, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

// Create commits the order in a single transaction: the order row, one line
// per cart line, the stock decrement, and the cart clear all land together or
// not at all. Stock rows are locked first so two checkouts cannot oversell
// the same kit.
func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, l := range o.Lines {
		var stock int
		err := tx.QueryRowContext(ctx,
			`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, l.ProductID).Scan(&stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("product %s: %w", l.ProductID, ErrNotFound)
			}
			return fmt.Errorf("lock stock: %w", err)
		}
		if stock < l.Quantity {
			return fmt.Errorf("product %s: %w", l.ProductID, ErrInsufficientStock)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total_amount, status, ship_name, ship_address, ship_city, ship_state, ship_pincode, ship_phone, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.ID, o.UserID, o.TotalAmount, string(o.Status),
		o.Shipping.Name, o.Shipping.Address, o.Shipping.City, o.Shipping.State, o.Shipping.Pincode, o.Shipping.Phone,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, l := range o.Lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_lines (id, order_id, product_id, quantity, unit_price)
             VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), o.ID, l.ProductID, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order_line: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - $2 WHERE id = $1`,
			l.ProductID, l.Quantity,
		)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM cart_lines WHERE user_id = $1`, o.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

const orderColumns = `id, user_id, total_amount, status, ship_name, ship_address, ship_city, ship_state, ship_pincode, ship_phone, created_at`

func (r *repo) GetByID(ctx context.Context, userID, orderID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`,
		orderID, userID,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.loadLines(ctx, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		if err := r.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *repo) loadLines(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, quantity, unit_price FROM order_lines WHERE order_id = $1`,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("select order_lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return fmt.Errorf("scan order_line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var status string
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &status,
		&o.Shipping.Name, &o.Shipping.Address, &o.Shipping.City, &o.Shipping.State,
		&o.Shipping.Pincode, &o.Shipping.Phone, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, err
		}
		return Order{}, fmt.Errorf("scan order: %w", err)
	}
	o.Status = Status(status)
	return o, nil
}

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cart line not found")

type Repository interface {
	Add(ctx context.Context, userID, productID string, quantity int) (*Line, error)
	SetQuantity(ctx context.Context, userID, lineID string, quantity int) error
	Remove(ctx context.Context, userID, lineID string) error
	List(ctx context.Context, userID string) ([]LineView, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

// Add inserts a line or increments the quantity of the existing one for the
// same (user, product) in a single statement, so concurrent adds cannot lose
// an update.
func (r *repo) Add(ctx context.Context, userID, productID string, quantity int) (*Line, error) {
	const query = `
INSERT INTO cart_lines (id, user_id, product_id, quantity, created_at)
VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (user_id, product_id) DO UPDATE
SET quantity = cart_lines.quantity + EXCLUDED.quantity
RETURNING id, user_id, product_id, quantity, created_at
`

	var l Line
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), userID, productID, quantity).
		Scan(&l.ID, &l.UserID, &l.ProductID, &l.Quantity, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}
	return &l, nil
}

func (r *repo) SetQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_lines SET quantity = $3 WHERE id = $1 AND user_id = $2`,
		lineID, userID, quantity)
	if err != nil {
		return fmt.Errorf("update cart line: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove deletes the line. Deleting a line that is already gone is not an
// error.
func (r *repo) Remove(ctx context.Context, userID, lineID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE id = $1 AND user_id = $2`, lineID, userID)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context, userID string) ([]LineView, error) {
	const query = `
SELECT l.id, l.user_id, l.product_id, l.quantity, l.created_at,
       p.id, p.name, p.description, p.price, p.image_url, p.category,
       p.age_recommendation, p.whats_included, p.stock, p.featured, p.created_at
FROM cart_lines l
JOIN products p ON p.id = l.product_id
WHERE l.user_id = $1
ORDER BY l.created_at
`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select cart lines: %w", err)
	}
	defer rows.Close()

	var lines []LineView
	for rows.Next() {
		var v LineView
		p := &v.Product
		err := rows.Scan(&v.ID, &v.UserID, &v.ProductID, &v.Quantity, &v.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category,
			&p.AgeRecommendation, &p.WhatsIncluded, &p.Stock, &p.Featured, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return lines, nil
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero value lists everything, newest
// first.
type Filter struct {
	Category     string
	FeaturedOnly bool
	Limit        int
}

type Repository interface {
	ListProducts(ctx context.Context, f Filter) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListReviews(ctx context.Context, productID string, limit int) ([]Review, error)
	ListRecentReviews(ctx context.Context, limit int) ([]Review, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

const productColumns = `id, name, description, price, image_url, category, age_recommendation, whats_included, stock, featured, created_at`

func (r *repo) ListProducts(ctx context.Context, f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	var args []any
	var where []string
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, "category = $"+strconv.Itoa(len(args)))
	}
	if f.FeaturedOnly {
		where = append(where, "featured = TRUE")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return products, nil
}

func (r *repo) GetProduct(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListReviews(ctx context.Context, productID string, limit int) ([]Review, error) {
	query := `SELECT id, product_id, user_id, content, rating, customer_name, created_at
              FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`
	args := []any{productID}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $2"
	}

	return r.queryReviews(ctx, query, args...)
}

func (r *repo) ListRecentReviews(ctx context.Context, limit int) ([]Review, error) {
	query := `SELECT id, product_id, user_id, content, rating, customer_name, created_at
              FROM reviews ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $1"
	}

	return r.queryReviews(ctx, query, args...)
}

func (r *repo) queryReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Content, &rv.Rating, &rv.CustomerName, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return reviews, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category,
		&p.AgeRecommendation, &p.WhatsIncluded, &p.Stock, &p.Featured, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, err
		}
		return Product{}, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func productRows(products ...Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "category",
		"age_recommendation", "whats_included", "stock", "featured", "created_at"})
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category,
			p.AgeRecommendation, p.WhatsIncluded, p.Stock, p.Featured, p.CreatedAt)
	}
	return rows
}

func TestListProducts_NoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)).
		WillReturnRows(productRows(
			Product{ID: "p2", Name: "newer", Category: "Ramayana", Price: 59900, CreatedAt: now},
			Product{ID: "p1", Name: "older", Category: "Mahabharata", Price: 129900, CreatedAt: now.Add(-time.Hour)},
		))

	products, err := repo.ListProducts(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "p2", products[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_CategoryAndLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY created_at DESC LIMIT $2`)).
		WithArgs("Ramayana", 4).
		WillReturnRows(productRows(Product{ID: "p1", Category: "Ramayana"}))

	products, err := repo.ListProducts(context.Background(), Filter{Category: "Ramayana", Limit: 4})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_FeaturedOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+productColumns+` FROM products WHERE featured = TRUE ORDER BY created_at DESC LIMIT $1`)).
		WithArgs(4).
		WillReturnRows(productRows())

	products, err := repo.ListProducts(context.Background(), Filter{FeaturedOnly: true, Limit: 4})
	require.NoError(t, err)
	require.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+productColumns+` FROM products WHERE id = $1`)).
		WithArgs("missing").
		WillReturnRows(productRows())

	_, err = repo.GetProduct(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_TransientErrorIsNotNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+productColumns+` FROM products WHERE id = $1`)).
		WithArgs("p1").
		WillReturnError(errors.New("connection refused"))

	_, err = repo.GetProduct(context.Background(), "p1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviews_Limit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "user_id", "content", "rating", "customer_name", "created_at"}).
		AddRow("r1", "p1", "u1", "lovely kit", 5, "Asha", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, product_id, user_id, content, rating, customer_name, created_at
              FROM reviews WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2`)).
		WithArgs("p1", 3).
		WillReturnRows(rows)

	reviews, err := repo.ListReviews(context.Background(), "p1", 3)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 5, reviews[0].Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentReviews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "user_id", "content", "rating", "customer_name", "created_at"}).
		AddRow("r2", "p2", "u2", "great gift", 4, "Ravi", time.Now()).
		AddRow("r1", "p1", "u1", "lovely kit", 5, "Asha", time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, product_id, user_id, content, rating, customer_name, created_at
              FROM reviews ORDER BY created_at DESC LIMIT $1`)).
		WithArgs(3).
		WillReturnRows(rows)

	reviews, err := repo.ListRecentReviews(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, "r2", reviews[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

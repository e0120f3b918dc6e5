package httpapi_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/suhas-pr/kaladhaara/internal/auth"
	"github.com/suhas-pr/kaladhaara/internal/cart"
	"github.com/suhas-pr/kaladhaara/internal/catalog"
	"github.com/suhas-pr/kaladhaara/internal/httpapi"
	"github.com/suhas-pr/kaladhaara/internal/order"
)

// Mocks shared across the handler tests, in the hand-rolled func-field style.

type catalogRepoMock struct {
	ListProductsFunc      func(ctx context.Context, f catalog.Filter) ([]catalog.Product, error)
	GetProductFunc        func(ctx context.Context, id string) (*catalog.Product, error)
	ListReviewsFunc       func(ctx context.Context, productID string, limit int) ([]catalog.Review, error)
	ListRecentReviewsFunc func(ctx context.Context, limit int) ([]catalog.Review, error)
}

func (m *catalogRepoMock) ListProducts(ctx context.Context, f catalog.Filter) ([]catalog.Product, error) {
	return m.ListProductsFunc(ctx, f)
}

func (m *catalogRepoMock) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *catalogRepoMock) ListReviews(ctx context.Context, productID string, limit int) ([]catalog.Review, error) {
	return m.ListReviewsFunc(ctx, productID, limit)
}

func (m *catalogRepoMock) ListRecentReviews(ctx context.Context, limit int) ([]catalog.Review, error) {
	return m.ListRecentReviewsFunc(ctx, limit)
}

type cartRepoMock struct {
	AddFunc         func(ctx context.Context, userID, productID string, quantity int) (*cart.Line, error)
	SetQuantityFunc func(ctx context.Context, userID, lineID string, quantity int) error
	RemoveFunc      func(ctx context.Context, userID, lineID string) error
	ListFunc        func(ctx context.Context, userID string) ([]cart.LineView, error)

	calls int
}

func (m *cartRepoMock) Add(ctx context.Context, userID, productID string, quantity int) (*cart.Line, error) {
	m.calls++
	return m.AddFunc(ctx, userID, productID, quantity)
}

func (m *cartRepoMock) SetQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	m.calls++
	return m.SetQuantityFunc(ctx, userID, lineID, quantity)
}

func (m *cartRepoMock) Remove(ctx context.Context, userID, lineID string) error {
	m.calls++
	return m.RemoveFunc(ctx, userID, lineID)
}

func (m *cartRepoMock) List(ctx context.Context, userID string) ([]cart.LineView, error) {
	m.calls++
	return m.ListFunc(ctx, userID)
}

type orderRepoMock struct {
	CreateFunc     func(ctx context.Context, o *order.Order) error
	GetByIDFunc    func(ctx context.Context, userID, orderID string) (*order.Order, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]order.Order, error)

	createCalls int
}

func (m *orderRepoMock) Create(ctx context.Context, o *order.Order) error {
	m.createCalls++
	return m.CreateFunc(ctx, o)
}

func (m *orderRepoMock) GetByID(ctx context.Context, userID, orderID string) (*order.Order, error) {
	return m.GetByIDFunc(ctx, userID, orderID)
}

func (m *orderRepoMock) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return m.ListByUserFunc(ctx, userID)
}

type testEnv struct {
	catalogRepo *catalogRepoMock
	cartRepo    *cartRepoMock
	orderRepo   *orderRepoMock
	router      http.Handler
}

// newTestEnv wires the router with header-mode auth and mock repositories.
func newTestEnv() *testEnv {
	env := &testEnv{
		catalogRepo: &catalogRepoMock{},
		cartRepo:    &cartRepoMock{},
		orderRepo:   &orderRepoMock{},
	}

	logger := log.New(io.Discard, "", 0)
	cartSvc := cart.NewService(env.cartRepo)
	orderSvc := order.NewService(env.orderRepo, nil, logger)

	env.router = httpapi.NewRouter(
		httpapi.NewCatalogHandler(env.catalogRepo),
		httpapi.NewCartHandler(cartSvc),
		httpapi.NewOrderHandler(cartSvc, orderSvc, env.orderRepo),
		auth.NewMiddleware(""),
	)
	return env
}

func (e *testEnv) do(method, path, userID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, path, reader)
	if userID != "" {
		r.Header.Set(auth.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

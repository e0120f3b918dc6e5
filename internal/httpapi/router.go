package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/suhas-pr/kaladhaara/internal/auth"
)

func NewRouter(catalogH *CatalogHandler, cartH *CartHandler, orderH *OrderHandler, authMW *auth.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogH.ListProducts)
		r.Get("/products/{productId}", catalogH.GetProduct)
		r.Get("/products/{productId}/reviews", catalogH.ListProductReviews)
		r.Get("/reviews", catalogH.ListRecentReviews)

		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireUser)

			r.Get("/cart", cartH.GetCart)
			r.Post("/cart/items", cartH.AddItem)
			r.Put("/cart/items/{lineId}", cartH.UpdateItem)
			r.Delete("/cart/items/{lineId}", cartH.RemoveItem)

			r.Post("/checkout", orderH.Checkout)
			r.Get("/orders", orderH.ListOrders)
			r.Get("/orders/{orderId}", orderH.GetOrder)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront",
	})
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suhas-pr/kaladhaara/internal/auth"
	"github.com/suhas-pr/kaladhaara/internal/cart"
	"github.com/suhas-pr/kaladhaara/internal/order"
)

type OrderHandler struct {
	carts  *cart.Service
	orders *order.Service
	repo   order.Repository
}

func NewOrderHandler(carts *cart.Service, orders *order.Service, repo order.Repository) *OrderHandler {
	return &OrderHandler{carts: carts, orders: orders, repo: repo}
}

// Checkout reads the current cart and commits it as an order with the posted
// shipping address.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var ship order.ShippingAddress
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	lines, err := h.carts.List(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	o, err := h.orders.PlaceOrder(ctx, userID, ship, lines)
	if err != nil {
		writeDomainError(w, err, "error placing order")
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.GetByID(ctx, userID, orderID)
	if err != nil {
		writeDomainError(w, err, "failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

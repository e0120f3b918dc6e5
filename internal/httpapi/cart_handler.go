package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suhas-pr/kaladhaara/internal/auth"
	"github.com/suhas-pr/kaladhaara/internal/cart"
)

type CartHandler struct {
	svc *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	lines, err := h.svc.List(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	if lines == nil {
		lines = []cart.LineView{}
	}

	writeJSON(w, http.StatusOK, cart.View{
		UserID: userID,
		Lines:  lines,
		Total:  cart.Total(lines),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	line, err := h.svc.Add(ctx, userID, body.ProductID, body.Quantity)
	if err != nil {
		writeDomainError(w, err, "failed to add to cart")
		return
	}

	writeJSON(w, http.StatusOK, line)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	lineID := chi.URLParam(r, "lineId")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.svc.SetQuantity(ctx, userID, lineID, body.Quantity); err != nil {
		writeDomainError(w, err, "failed to update cart line")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	lineID := chi.URLParam(r, "lineId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.svc.Remove(ctx, userID, lineID); err != nil {
		writeDomainError(w, err, "failed to remove cart line")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suhas-pr/kaladhaara/internal/apperr"
	"github.com/suhas-pr/kaladhaara/internal/cart"
	"github.com/suhas-pr/kaladhaara/internal/catalog"
	"github.com/suhas-pr/kaladhaara/internal/order"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps service errors onto HTTP statuses. Validation errors
// carry their message through; everything else stays generic.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var v *apperr.ValidationError
	switch {
	case errors.As(err, &v):
		writeError(w, http.StatusBadRequest, v.Msg)
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, cart.ErrNotFound),
		errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, order.ErrInsufficientStock):
		writeError(w, http.StatusConflict, "insufficient stock")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

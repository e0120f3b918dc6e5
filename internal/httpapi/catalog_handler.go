package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/suhas-pr/kaladhaara/internal/catalog"
)

// Featured home rail shows at most 4 kits, recent reviews at most 3.
const (
	defaultFeaturedLimit = 4
	defaultReviewLimit   = 3
)

type CatalogHandler struct {
	repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	f := catalog.Filter{
		Category:     r.URL.Query().Get("category"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		f.Limit = limit
	} else if f.FeaturedOnly {
		f.Limit = defaultFeaturedLimit
	}

	products, err := h.repo.ListProducts(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	p, err := h.repo.GetProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to load product")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	reviews, err := h.repo.ListReviews(r.Context(), productID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	if reviews == nil {
		reviews = []catalog.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *CatalogHandler) ListRecentReviews(w http.ResponseWriter, r *http.Request) {
	limit := defaultReviewLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	reviews, err := h.repo.ListRecentReviews(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	if reviews == nil {
		reviews = []catalog.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}

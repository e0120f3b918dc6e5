package cart

import (
	"context"

	"github.com/suhas-pr/kaladhaara/internal/apperr"
)

// Service validates cart mutations before they reach the store. It does not
// clamp quantities against product stock; the order commit is the
// authoritative stock check.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) (*Line, error) {
	if productID == "" {
		return nil, apperr.Validationf("productId is required")
	}
	if quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}
	return s.repo.Add(ctx, userID, productID, quantity)
}

// SetQuantity overwrites the line's quantity. Quantities below 1 are rejected
// and the line is left untouched.
func (s *Service) SetQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if lineID == "" {
		return apperr.Validationf("lineId is required")
	}
	if quantity < 1 {
		return apperr.Validationf("quantity must be at least 1")
	}
	return s.repo.SetQuantity(ctx, userID, lineID, quantity)
}

func (s *Service) Remove(ctx context.Context, userID, lineID string) error {
	if lineID == "" {
		return apperr.Validationf("lineId is required")
	}
	return s.repo.Remove(ctx, userID, lineID)
}

func (s *Service) List(ctx context.Context, userID string) ([]LineView, error) {
	return s.repo.List(ctx, userID)
}

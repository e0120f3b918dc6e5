package order

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/suhas-pr/kaladhaara/internal/apperr"
	"github.com/suhas-pr/kaladhaara/internal/cart"
)

// EventPublisher announces a committed order. A nil publisher disables
// events.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
}

type Service struct {
	repo      Repository
	publisher EventPublisher
	logger    *log.Logger
	now       func() time.Time
}

func NewService(repo Repository, publisher EventPublisher, logger *log.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PlaceOrder converts the cart into a persisted order. Validation happens
// before any store call; the commit itself is one transaction, so a failure
// leaves no partial order behind and the cart intact.
func (s *Service) PlaceOrder(ctx context.Context, userID string, ship ShippingAddress, lines []cart.LineView) (*Order, error) {
	if userID == "" {
		return nil, apperr.Validationf("user is required")
	}
	if len(lines) == 0 {
		return nil, apperr.Validationf("cart is empty")
	}
	if err := ship.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		TotalAmount: cart.Total(lines),
		Status:      StatusPending,
		Shipping:    ship,
		CreatedAt:   s.now().UTC(),
	}
	for _, l := range lines {
		o.Lines = append(o.Lines, Line{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is durable at this point; the event is best effort.
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
			s.logger.Printf("publish order.placed for %s: %v", o.ID, err)
		}
	}

	return o, nil
}

package cart

import (
	"time"

	"github.com/suhas-pr/kaladhaara/internal/catalog"
)

// Line is one (user, product, quantity) record pending purchase. At most one
// line exists per (user, product); adds accumulate into it.
type Line struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// LineView is a line joined with its product for display and totals.
type LineView struct {
	Line
	Product catalog.Product `json:"product"`
}

// View is what the cart endpoints return.
type View struct {
	UserID string     `json:"userId"`
	Lines  []LineView `json:"lines"`
	Total  int64      `json:"totalAmount"`
}

// Total sums price x quantity over the lines. It is computed per request and
// never persisted.
func Total(lines []LineView) int64 {
	var total int64
	for _, l := range lines {
		total += l.Product.Price * int64(l.Quantity)
	}
	return total
}

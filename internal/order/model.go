package order

import (
	"strings"
	"time"

	"github.com/suhas-pr/kaladhaara/internal/apperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Validate rejects the address before any store call is made.
func (a ShippingAddress) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"phone", a.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validationf("missing shipping field: %s", f.name)
		}
	}
	return nil
}

// Line snapshots the unit price at the moment of purchase, decoupled from
// later product price changes.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type Order struct {
	ID          string          `json:"orderId"`
	UserID      string          `json:"userId"`
	TotalAmount int64           `json:"totalAmount"`
	Status      Status          `json:"status"`
	Shipping    ShippingAddress `json:"shippingAddress"`
	Lines       []Line          `json:"lines"`
	CreatedAt   time.Time       `json:"createdAt"`
}

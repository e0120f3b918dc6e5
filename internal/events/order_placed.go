package events

import "time"

// OrderPlaced is the wire contract published to the order.placed queue when a
// checkout commits. Fulfilment and notification consumers depend on these
// field names.
type OrderPlaced struct {
	EventType   string            `json:"eventType"`
	OrderID     string            `json:"orderId"`
	UserID      string            `json:"userId"`
	TotalAmount int64             `json:"totalAmount"`
	Lines       []OrderPlacedLine `json:"lines"`
	Timestamp   time.Time         `json:"timestamp"`
}

type OrderPlacedLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

package catalog

import "time"

// Product is a craft kit as the back office published it. The storefront
// never mutates products except for the stock decrement at checkout.
// Price is in minor currency units (paise).
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             int64     `json:"price"`
	ImageURL          string    `json:"imageUrl"`
	Category          string    `json:"category"`
	AgeRecommendation string    `json:"ageRecommendation"`
	WhatsIncluded     string    `json:"whatsIncluded"`
	Stock             int       `json:"stock"`
	Featured          bool      `json:"featured"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Review is read-only from the storefront.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	UserID       string    `json:"userId"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

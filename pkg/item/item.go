package item

import (
	"fmt"
	"time"
)

// Picture is an image attached to an item.
type Picture struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// Item is a marketplace listing stored as one document.
//
// ID is the document key and the only field used for addressing. No other
// field is validated; a partially filled Item is a valid record. Fields carry
// no omitempty so every write sends the whole record.
type Item struct {
	ID                 string    `json:"id" yaml:"id"`
	SiteID             string    `json:"siteId" yaml:"site_id"`
	Title              string    `json:"title" yaml:"title"`
	Subtitle           string    `json:"subtitle" yaml:"subtitle"`
	SellerID           int64     `json:"sellerId" yaml:"seller_id"`
	CategoryID         string    `json:"categoryId" yaml:"category_id"`
	Price              float64   `json:"price" yaml:"price"`
	CurrencyID         string    `json:"currencyId" yaml:"currency_id"`
	AvailableQuantity  int       `json:"availableQuantity" yaml:"available_quantity"`
	Condition          string    `json:"condition" yaml:"condition"`
	Pictures           []Picture `json:"pictures" yaml:"pictures"`
	AcceptsMercadoPago bool      `json:"acceptsMercadopago" yaml:"accepts_mercadopago"`
	Status             string    `json:"status" yaml:"status"`
	DateCreated        time.Time `json:"dateCreated" yaml:"date_created"`
	LastUpdated        time.Time `json:"lastUpdated" yaml:"last_updated"`
}

// Validate checks the only hard requirement: a document key.
func (i Item) Validate() error {
	if i.ID == "" {
		return ErrMissingID
	}
	return nil
}

// String renders a single-line summary for console output.
func (i Item) String() string {
	return fmt.Sprintf(
		"Item{id=%s, siteId=%s, title=%q, subtitle=%q, sellerId=%d, categoryId=%s, price=%.2f %s, availableQuantity=%d, condition=%s, pictures=%d, acceptsMercadopago=%t, status=%s}",
		i.ID, i.SiteID, i.Title, i.Subtitle, i.SellerID, i.CategoryID,
		i.Price, i.CurrencyID, i.AvailableQuantity, i.Condition, len(i.Pictures),
		i.AcceptsMercadoPago, i.Status,
	)
}

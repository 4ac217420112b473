package testutil

import (
	"github.com/google/uuid"

	"github.com/HerbHall/diskprices/pkg/models"
)

// NewListing returns a Listing with sensible defaults, suitable for test fixtures.
// Override individual fields with options.
func NewListing(opts ...func(*models.Listing)) models.Listing {
	l := models.Listing{
		ID:           uuid.New().String(),
		Name:         "Test Drive 4TB",
		Category:     models.CategoryHDD,
		Retailer:     "Amazon",
		Condition:    models.ConditionNew,
		Price:        100,
		Capacity:     4,
		PricePerUnit: 25,
		URL:          "https://www.amazon.com/dp/TEST",
		Visible:      true,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithID sets the listing id.
func WithID(id string) func(*models.Listing) {
	return func(l *models.Listing) { l.ID = id }
}

// WithName sets the listing name.
func WithName(name string) func(*models.Listing) {
	return func(l *models.Listing) { l.Name = name }
}

// WithCategory sets the listing category.
func WithCategory(c models.Category) func(*models.Listing) {
	return func(l *models.Listing) { l.Category = c }
}

// WithRetailer sets the retailer.
func WithRetailer(r string) func(*models.Listing) {
	return func(l *models.Listing) { l.Retailer = r }
}

// WithCondition sets the item condition.
func WithCondition(c models.Condition) func(*models.Listing) {
	return func(l *models.Listing) { l.Condition = c }
}

// WithPricing sets price and capacity and derives the unit price the way
// the loader does.
func WithPricing(price, capacityTB float64) func(*models.Listing) {
	return func(l *models.Listing) {
		l.Price = price
		l.Capacity = capacityTB
		l.PricePerUnit = 0
		if capacityTB > 0 {
			l.PricePerUnit = price / capacityTB
		}
	}
}

// WithAffiliate sets the buy-link URL and affiliate tag.
func WithAffiliate(url, tag string) func(*models.Listing) {
	return func(l *models.Listing) {
		l.URL = url
		l.AffiliateTag = tag
	}
}

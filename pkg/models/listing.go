// Package models defines the listing types shared by the catalog loader,
// the view engine and the HTTP surface.
package models

import (
	"math"
	"strings"
)

// Category is the closed set of storage-device families listed on the site.
type Category string

const (
	CategoryHDD    Category = "HDD"
	CategorySSD    Category = "SSD"
	CategoryTape   Category = "Tape"
	CategoryRAM    Category = "RAM"
	CategorySDCard Category = "SD Card"
)

// categories is the display order used by the category select.
var categories = []Category{
	CategoryHDD,
	CategorySSD,
	CategoryTape,
	CategoryRAM,
	CategorySDCard,
}

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves s to a known category, ignoring case and accepting
// the slug form ("sd-card"). The second result is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c, true
		}
	}
	return "", false
}

// Slug returns the lowercase, hyphenated form of the category.
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Condition describes the state an item is sold in.
type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionUsed        Condition = "Used"
	ConditionRefurbished Condition = "Refurbished"
)

// Listing is one catalog offer. Everything except Visible and BestDeal is
// fixed once the catalog is loaded.
type Listing struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Retailer     string    `json:"retailer"`
	Condition    Condition `json:"condition"`
	Price        float64   `json:"price"`
	Capacity     float64   `json:"capacity_tb"`
	PricePerUnit float64   `json:"price_per_tb"`
	URL          string    `json:"url,omitempty"`
	AffiliateTag string    `json:"affiliate_tag,omitempty"`

	// Unpriced is set when the source price could not be read. Price is
	// then zero but must not win unit price comparisons.
	Unpriced bool `json:"unpriced,omitempty"`

	// Derived on every filter / best-deal pass.
	Visible  bool `json:"visible"`
	BestDeal bool `json:"best_deal"`
}

// HasUnitPrice reports whether the listing can take part in unit price
// comparisons. Unpriced listings and listings without a positive capacity
// have no unit price.
func (l *Listing) HasUnitPrice() bool {
	if l.Unpriced || l.Capacity <= 0 || math.IsNaN(l.Capacity) || math.IsInf(l.Capacity, 0) {
		return false
	}
	return l.PricePerUnit >= 0 && !math.IsNaN(l.PricePerUnit) && !math.IsInf(l.PricePerUnit, 0)
}

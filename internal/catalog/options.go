package catalog

import (
	"slices"
	"strings"

	"github.com/HerbHall/diskprices/pkg/models"
)

// Options are the values offered by the filter and sort selects.
// Retailers and conditions come from the loaded listing set.
type Options struct {
	Categories []models.Category `json:"categories"`
	Retailers  []string          `json:"retailers"`
	Conditions []string          `json:"conditions"`
	Sorts      []SortOrder       `json:"sorts"`
}

// OptionsFor derives the select options from a listing set. Retailer and
// condition values are de-duplicated case-insensitively, keeping the first
// spelling seen, and sorted alphabetically.
func OptionsFor(listings []*models.Listing) Options {
	retailers := distinct(listings, func(l *models.Listing) string { return l.Retailer })
	conditions := distinct(listings, func(l *models.Listing) string { return string(l.Condition) })
	return Options{
		Categories: models.Categories(),
		Retailers:  retailers,
		Conditions: conditions,
		Sorts:      SortOrders(),
	}
}

// Category resolves v against the closed category set.
func (o Options) Category(v string) (models.Category, bool) {
	return models.ParseCategory(v)
}

// Retailer resolves v to the canonical spelling of a known retailer.
func (o Options) Retailer(v string) (string, bool) {
	return lookup(o.Retailers, v)
}

// Condition resolves v to the canonical spelling of a known condition.
func (o Options) Condition(v string) (string, bool) {
	return lookup(o.Conditions, v)
}

func lookup(values []string, v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	f := fold(v)
	for _, candidate := range values {
		if fold(candidate) == f {
			return candidate, true
		}
	}
	return "", false
}

func distinct(listings []*models.Listing, field func(*models.Listing) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, l := range listings {
		v := field(l)
		if v == "" {
			continue
		}
		f := fold(v)
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(fold(a), fold(b))
	})
	return out
}

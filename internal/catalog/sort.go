package catalog

import (
	"cmp"
	"math"
	"slices"

	"github.com/HerbHall/diskprices/pkg/models"
)

// SortVisible returns visible ordered by o. The sort is stable, so listings
// with equal values keep their input order. The input slice is not
// modified and the Visible / BestDeal flags are left untouched.
func SortVisible(visible []*models.Listing, o SortOrder) []*models.Listing {
	out := slices.Clone(visible)
	if !validKey(o.Key) {
		return out
	}

	modifier := 1
	if o.Direction == Descending {
		modifier = -1
	}
	slices.SortStableFunc(out, func(a, b *models.Listing) int {
		return cmp.Compare(sortValue(a, o.Key), sortValue(b, o.Key)) * modifier
	})
	return out
}

func validKey(k SortKey) bool {
	switch k {
	case SortByPricePerUnit, SortByPrice, SortByCapacity:
		return true
	}
	return false
}

// sortValue extracts the field named by key. Values that are not usable
// numbers sort as zero.
func sortValue(l *models.Listing, key SortKey) float64 {
	var v float64
	switch key {
	case SortByPricePerUnit:
		v = l.PricePerUnit
	case SortByPrice:
		v = l.Price
	case SortByCapacity:
		v = l.Capacity
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

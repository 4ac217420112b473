package catalog

import "github.com/HerbHall/diskprices/pkg/models"

// BestDeals maps each category to the id of its cheapest listing per TB.
type BestDeals map[models.Category]string

// ComputeBestDeals selects, per category, the listing with the lowest unit
// price among visible listings that have one. Ties go to the listing that
// comes first in visible. Categories without an eligible listing get no
// entry.
func ComputeBestDeals(visible []*models.Listing) BestDeals {
	best := make(map[models.Category]*models.Listing)
	for _, l := range visible {
		if !l.HasUnitPrice() {
			continue
		}
		cur, ok := best[l.Category]
		if !ok || l.PricePerUnit < cur.PricePerUnit {
			best[l.Category] = l
		}
	}

	deals := make(BestDeals, len(best))
	for c, l := range best {
		deals[c] = l.ID
	}
	return deals
}

// MarkBestDeals sets BestDeal on the selected listings and clears it on all
// others, including listings that are currently hidden.
func MarkBestDeals(all []*models.Listing, deals BestDeals) {
	for _, l := range all {
		id, ok := deals[l.Category]
		l.BestDeal = ok && id == l.ID
	}
}

// IsBestDeal reports whether id is the best deal of any category.
func (d BestDeals) IsBestDeal(id string) bool {
	for _, v := range d {
		if v == id {
			return true
		}
	}
	return false
}

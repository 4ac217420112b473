// Package catalog provides the filter, best-deal and sort engine behind the
// listing grid, together with the URL encoding of the view criteria.
package catalog

import (
	"errors"

	pkgcatalog "github.com/HerbHall/diskprices/pkg/catalog"
	"github.com/HerbHall/diskprices/pkg/models"
)

// ErrListingNotFound is returned when an id names no loaded listing.
var ErrListingNotFound = errors.New("listing not found")

// Result is the outcome of one recompute: the visible listings in display
// order and the best deal of each category.
type Result struct {
	Ordered   []*models.Listing
	BestDeals BestDeals
}

// Count returns the number of visible listings.
func (r Result) Count() int {
	return len(r.Ordered)
}

// Empty reports whether nothing is visible.
func (r Result) Empty() bool {
	return len(r.Ordered) == 0
}

// IDs returns the ids of the visible listings in display order.
func (r Result) IDs() []string {
	ids := make([]string, len(r.Ordered))
	for i, l := range r.Ordered {
		ids[i] = l.ID
	}
	return ids
}

// Engine owns one listing set for the lifetime of a page session. Listings
// are never added or removed; only their flags and order change. An Engine
// is not safe for concurrent use.
type Engine struct {
	listings []*models.Listing
	index    map[string]*models.Listing
	options  Options
}

// NewEngine creates an engine over a private copy of the catalog entries.
func NewEngine(cat *pkgcatalog.Catalog) (*Engine, error) {
	entries, err := cat.Entries()
	if err != nil {
		return nil, err
	}
	return NewEngineFromListings(entries), nil
}

// NewEngineFromListings creates an engine over the given listings. The
// engine keeps pointers into the slice.
func NewEngineFromListings(entries []models.Listing) *Engine {
	e := &Engine{
		listings: make([]*models.Listing, len(entries)),
		index:    make(map[string]*models.Listing, len(entries)),
	}
	for i := range entries {
		e.listings[i] = &entries[i]
		e.index[entries[i].ID] = &entries[i]
	}
	e.options = OptionsFor(e.listings)
	return e
}

// Recompute runs a full pass for c: filter, best deal over the filtered
// set, then sort.
func (e *Engine) Recompute(c Criteria) Result {
	filtered := ApplyFilters(e.listings, c)
	deals := ComputeBestDeals(filtered.Visible)
	MarkBestDeals(e.listings, deals)
	return Result{
		Ordered:   SortVisible(filtered.Visible, c.Sort),
		BestDeals: deals,
	}
}

// RefreshBestDeals marks every listing visible and runs only the best-deal
// pass. Listings stay in load order. Used for the unfiltered first paint.
func (e *Engine) RefreshBestDeals() Result {
	for _, l := range e.listings {
		l.Visible = true
	}
	deals := ComputeBestDeals(e.listings)
	MarkBestDeals(e.listings, deals)

	ordered := make([]*models.Listing, len(e.listings))
	copy(ordered, e.listings)
	return Result{Ordered: ordered, BestDeals: deals}
}

// Options returns the select options derived from the listing set.
func (e *Engine) Options() Options {
	return e.options
}

// Len returns the size of the listing set.
func (e *Engine) Len() int {
	return len(e.listings)
}

// Listing returns a copy of the listing with the given id.
func (e *Engine) Listing(id string) (models.Listing, error) {
	l, ok := e.index[id]
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}
	return *l, nil
}

// Listings returns copies of all listings in load order.
func (e *Engine) Listings() []models.Listing {
	out := make([]models.Listing, len(e.listings))
	for i, l := range e.listings {
		out[i] = *l
	}
	return out
}

package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/HerbHall/diskprices/pkg/models"
)

// FilterResult is the outcome of a filter pass. An empty result is a normal
// outcome and is reported through Empty, never as an error.
type FilterResult struct {
	Visible []*models.Listing
}

// Count returns the number of visible listings.
func (r FilterResult) Count() int {
	return len(r.Visible)
}

// Empty reports whether no listing passed the filters.
func (r FilterResult) Empty() bool {
	return len(r.Visible) == 0
}

// ApplyFilters updates the Visible flag of every listing and returns the
// visible subset in input order.
func ApplyFilters(listings []*models.Listing, c Criteria) FilterResult {
	m := newMatcher(c)
	visible := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		l.Visible = m.match(l)
		if l.Visible {
			visible = append(visible, l)
		}
	}
	return FilterResult{Visible: visible}
}

// ResultsLabel formats the results count shown above the grid.
func ResultsLabel(n int) string {
	if n == 1 {
		return "1 product found"
	}
	return strconv.Itoa(n) + " products found"
}

// matcher holds case-folded criteria for one pass.
type matcher struct {
	category  string
	retailer  string
	condition string
	search    string
}

func newMatcher(c Criteria) matcher {
	return matcher{
		category:  fold(string(c.Category)),
		retailer:  fold(c.Retailer),
		condition: fold(c.Condition),
		search:    fold(strings.TrimSpace(c.Search)),
	}
}

func (m matcher) match(l *models.Listing) bool {
	if m.category != "" && fold(string(l.Category)) != m.category {
		return false
	}
	if m.retailer != "" && fold(l.Retailer) != m.retailer {
		return false
	}
	if m.condition != "" && fold(string(l.Condition)) != m.condition {
		return false
	}
	if m.search != "" && !strings.Contains(fold(l.Name), m.search) {
		return false
	}
	return true
}

// fold returns the case-folded form of s for caseless comparison.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

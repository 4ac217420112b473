package catalog

import (
	"strings"

	"github.com/HerbHall/diskprices/pkg/models"
)

// SortKey names the numeric listing field used for ordering.
type SortKey string

const (
	SortByPricePerUnit SortKey = "pricePerUnit"
	SortByPrice        SortKey = "price"
	SortByCapacity     SortKey = "capacity"
)

// legacySortKeys maps older URL spellings onto current keys.
var legacySortKeys = map[string]SortKey{
	"pricepertb": SortByPricePerUnit,
}

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortOrder pairs a key with a direction. Its string form ("price-desc")
// is what the sort select and the URL carry.
type SortOrder struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders by unit price, cheapest first.
var DefaultSort = SortOrder{Key: SortByPricePerUnit, Direction: Ascending}

// SortOrders returns the orders offered by the sort select.
func SortOrders() []SortOrder {
	return []SortOrder{
		{SortByPricePerUnit, Ascending},
		{SortByPricePerUnit, Descending},
		{SortByPrice, Ascending},
		{SortByPrice, Descending},
		{SortByCapacity, Descending},
		{SortByCapacity, Ascending},
	}
}

func (o SortOrder) String() string {
	return string(o.Key) + "-" + string(o.Direction)
}

// MarshalText implements encoding.TextMarshaler.
func (o SortOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Invalid input yields
// DefaultSort rather than an error.
func (o *SortOrder) UnmarshalText(b []byte) error {
	*o, _ = ParseSortOrder(string(b))
	return nil
}

// ParseSortOrder parses "<key>-<asc|desc>". Keys and directions are matched
// case-insensitively. The second result is false when s is not a valid
// order, in which case DefaultSort is returned.
func ParseSortOrder(s string) (SortOrder, bool) {
	key, dir, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return DefaultSort, false
	}

	var o SortOrder
	switch {
	case strings.EqualFold(key, string(SortByPricePerUnit)):
		o.Key = SortByPricePerUnit
	case strings.EqualFold(key, string(SortByPrice)):
		o.Key = SortByPrice
	case strings.EqualFold(key, string(SortByCapacity)):
		o.Key = SortByCapacity
	default:
		legacy, ok := legacySortKeys[strings.ToLower(key)]
		if !ok {
			return DefaultSort, false
		}
		o.Key = legacy
	}

	switch {
	case strings.EqualFold(dir, string(Ascending)):
		o.Direction = Ascending
	case strings.EqualFold(dir, string(Descending)):
		o.Direction = Descending
	default:
		return DefaultSort, false
	}
	return o, true
}

// Criteria is the current combination of filter, search and sort
// selections. The zero value of each filter field means "any".
type Criteria struct {
	Category  models.Category `json:"category,omitempty"`
	Retailer  string          `json:"retailer,omitempty"`
	Condition string          `json:"condition,omitempty"`
	Search    string          `json:"search,omitempty"`
	Sort      SortOrder       `json:"sort"`
}

// DefaultCriteria returns criteria with no filters and the default sort.
func DefaultCriteria() Criteria {
	return Criteria{Sort: DefaultSort}
}

// IsDefault reports whether c filters nothing and uses the default sort.
func (c Criteria) IsDefault() bool {
	return c == DefaultCriteria()
}

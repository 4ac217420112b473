package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/diskprices/pkg/models"
)

// record is one listing as written by the site data pipeline. Numbers are
// kept as raw scalars so malformed values can degrade instead of failing
// the whole document.
type record struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Retailer     string `yaml:"retailer"`
	Condition    string `yaml:"condition"`
	Price        number `yaml:"price"`
	Capacity     number `yaml:"capacity_tb"`
	PricePerUnit number `yaml:"price_per_tb"`
	URL          string `yaml:"url"`
	AffiliateTag string `yaml:"affiliate"`
}

// number holds the raw text of a YAML scalar.
type number struct {
	raw string
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return nil
	}
	n.raw = value.Value
	n.set = true
	return nil
}

// parse reads the scalar, tolerating currency symbols and thousands
// separators. Missing, unparseable or negative values yield zero and false.
func (n number) parse() (decimal.Decimal, bool) {
	if !n.set {
		return decimal.Zero, false
	}
	s := strings.TrimSpace(n.raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

func (n number) decimal() decimal.Decimal {
	d, _ := n.parse()
	return d
}

// listingNamespace scopes the ids derived for records that carry none.
var listingNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://diskprices.info/listings"))

// toListing normalizes a record into a Listing. The unit price is taken
// from the record when present and otherwise computed from price and
// capacity. A listing whose unit price would rest on a missing or
// malformed price is marked Unpriced.
func (r *record) toListing() models.Listing {
	price, priceOK := r.Price.parse()
	capacity := r.Capacity.decimal()

	unit := decimal.Zero
	unpriced := false
	if capacity.IsPositive() {
		unit = r.PricePerUnit.decimal()
		if unit.IsZero() {
			unit = price.Div(capacity)
			unpriced = !priceOK
		}
	}

	l := models.Listing{
		ID:           strings.TrimSpace(r.ID),
		Name:         strings.TrimSpace(r.Name),
		Category:     models.Category(strings.TrimSpace(r.Category)),
		Retailer:     strings.TrimSpace(r.Retailer),
		Condition:    models.Condition(strings.TrimSpace(r.Condition)),
		Price:        price.InexactFloat64(),
		Capacity:     capacity.InexactFloat64(),
		PricePerUnit: unit.Round(4).InexactFloat64(),
		URL:          strings.TrimSpace(r.URL),
		AffiliateTag: strings.TrimSpace(r.AffiliateTag),
		Unpriced:     unpriced,
		Visible:      true,
	}
	if c, ok := models.ParseCategory(r.Category); ok {
		l.Category = c
	}
	if l.ID == "" {
		key := strings.Join([]string{l.Retailer, l.Name, l.URL}, "|")
		l.ID = uuid.NewSHA1(listingNamespace, []byte(key)).String()
	}
	return l
}

package catalog

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/HerbHall/diskprices/pkg/models"
)

func testOptions() Options {
	return OptionsFor(pointers(sampleListings()))
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in     string
		want   SortOrder
		wantOK bool
	}{
		{"pricePerUnit-asc", SortOrder{SortByPricePerUnit, Ascending}, true},
		{"price-desc", SortOrder{SortByPrice, Descending}, true},
		{"CAPACITY-ASC", SortOrder{SortByCapacity, Ascending}, true},
		{"pricePerTB-desc", SortOrder{SortByPricePerUnit, Descending}, true},
		{"price", DefaultSort, false},
		{"price-sideways", DefaultSort, false},
		{"rating-asc", DefaultSort, false},
		{"", DefaultSort, false},
	}

	for _, tt := range tests {
		got, ok := ParseSortOrder(tt.in)
		assert.Equal(t, tt.want, got, "ParseSortOrder(%q)", tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseSortOrder(%q) ok", tt.in)
	}
}

func TestEncodeQuery_OmitsDefaults(t *testing.T) {
	assert.Empty(t, EncodeQuery(DefaultCriteria()))
	assert.Equal(t, "", QueryString(DefaultCriteria()))

	c := DefaultCriteria()
	c.Category = models.CategorySDCard
	c.Sort = SortOrder{SortByPrice, Descending}
	assert.Equal(t, "category=SD+Card&sort=price-desc", QueryString(c))
}

func TestQueryRoundTrip(t *testing.T) {
	opts := testOptions()
	tests := []Criteria{
		DefaultCriteria(),
		{Category: models.CategorySSD, Sort: DefaultSort},
		{Retailer: "eBay", Condition: "Used", Sort: SortOrder{SortByCapacity, Descending}},
		{Category: models.CategoryHDD, Retailer: "Newegg", Condition: "New", Search: "wd red", Sort: SortOrder{SortByPrice, Ascending}},
		{Search: "a&b=c", Sort: SortOrder{SortByPricePerUnit, Descending}},
	}

	for _, want := range tests {
		encoded := QueryString(want)
		values, err := url.ParseQuery(encoded)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", encoded, err)
		}
		got, _ := DecodeQuery(values, opts)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip through %q mismatch (-want +got):\n%s", encoded, diff)
		}
	}
}

func TestDecodeQuery(t *testing.T) {
	opts := testOptions()
	tests := []struct {
		name           string
		query          string
		want           Criteria
		wantRecognized bool
	}{
		{
			name:           "empty",
			query:          "",
			want:           DefaultCriteria(),
			wantRecognized: false,
		},
		{
			name:           "category and sort",
			query:          "category=ssd&sort=price-desc",
			want:           Criteria{Category: models.CategorySSD, Sort: SortOrder{SortByPrice, Descending}},
			wantRecognized: true,
		},
		{
			name:           "canonical retailer spelling",
			query:          "retailer=EBAY&condition=used",
			want:           Criteria{Retailer: "eBay", Condition: "Used", Sort: DefaultSort},
			wantRecognized: true,
		},
		{
			name:           "unknown values are no filter",
			query:          "category=floppy&retailer=walmart&condition=mint&sort=rating-asc",
			want:           DefaultCriteria(),
			wantRecognized: true,
		},
		{
			name:           "unknown keys are ignored",
			query:          "utm_source=newsletter&page=2",
			want:           DefaultCriteria(),
			wantRecognized: false,
		},
		{
			name:           "legacy sort key",
			query:          "sort=pricePerTB-desc",
			want:           Criteria{Sort: SortOrder{SortByPricePerUnit, Descending}},
			wantRecognized: true,
		},
		{
			name:           "search term",
			query:          "q=ironwolf",
			want:           Criteria{Search: "ironwolf", Sort: DefaultSort},
			wantRecognized: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got, recognized := DecodeQuery(values, opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeQuery(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
			assert.Equal(t, tt.wantRecognized, recognized)
		})
	}
}

func TestOptionsFor(t *testing.T) {
	opts := testOptions()

	assert.Equal(t, []string{"Amazon", "eBay", "Newegg"}, opts.Retailers)
	assert.Equal(t, []string{"New", "Used"}, opts.Conditions)
	assert.Equal(t, models.Categories(), opts.Categories)
	assert.Len(t, opts.Sorts, 6)
}

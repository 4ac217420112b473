package catalog

import (
	"math"
	"testing"

	"github.com/HerbHall/diskprices/internal/testutil"
	"github.com/HerbHall/diskprices/pkg/models"
)

func ids(listings []*models.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestSortVisible(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"unit price asc", SortOrder{SortByPricePerUnit, Ascending}, []string{"ram-a", "hdd-b", "hdd-a", "ssd-b", "ssd-a"}},
		{"unit price desc", SortOrder{SortByPricePerUnit, Descending}, []string{"ssd-a", "ssd-b", "hdd-a", "hdd-b", "ram-a"}},
		{"price asc", SortOrder{SortByPrice, Ascending}, []string{"ram-a", "hdd-b", "hdd-a", "ssd-a", "ssd-b"}},
		{"price desc", SortOrder{SortByPrice, Descending}, []string{"ssd-b", "ssd-a", "hdd-a", "hdd-b", "ram-a"}},
		{"capacity desc", SortOrder{SortByCapacity, Descending}, []string{"hdd-a", "hdd-b", "ssd-b", "ssd-a", "ram-a"}},
		{"capacity asc", SortOrder{SortByCapacity, Ascending}, []string{"ram-a", "ssd-a", "ssd-b", "hdd-a", "hdd-b"}},
		{"unknown key keeps input order", SortOrder{"rating", Ascending}, []string{"hdd-a", "hdd-b", "ssd-a", "ssd-b", "ram-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortVisible(pointers(sampleListings()), tt.order))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortVisible_PriceDescScenario(t *testing.T) {
	listings := pointers([]models.Listing{
		testutil.NewListing(testutil.WithID("sixty"), testutil.WithPricing(60, 1)),
		testutil.NewListing(testutil.WithID("hundred"), testutil.WithPricing(100, 1)),
	})

	got := SortVisible(listings, SortOrder{SortByPrice, Descending})
	if got[0].ID != "hundred" || got[1].ID != "sixty" {
		t.Errorf("order = %v, want [hundred sixty]", ids(got))
	}
}

func TestSortVisible_Stable(t *testing.T) {
	listings := pointers([]models.Listing{
		testutil.NewListing(testutil.WithID("a"), testutil.WithPricing(50, 1)),
		testutil.NewListing(testutil.WithID("b"), testutil.WithPricing(10, 1)),
		testutil.NewListing(testutil.WithID("c"), testutil.WithPricing(50, 2)),
		testutil.NewListing(testutil.WithID("d"), testutil.WithPricing(50, 4)),
	})

	for _, dir := range []Direction{Ascending, Descending} {
		got := ids(SortVisible(listings, SortOrder{SortByPrice, dir}))
		var equal []string
		for _, id := range got {
			if id != "b" {
				equal = append(equal, id)
			}
		}
		if equal[0] != "a" || equal[1] != "c" || equal[2] != "d" {
			t.Errorf("%s: equal-price order = %v, want [a c d]", dir, equal)
		}
	}
}

func TestSortVisible_DoesNotMutate(t *testing.T) {
	listings := pointers(sampleListings())
	listings[0].BestDeal = true
	before := ids(listings)

	SortVisible(listings, SortOrder{SortByPrice, Descending})

	after := ids(listings)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input reordered: %v -> %v", before, after)
		}
	}
	if !listings[0].BestDeal || !listings[0].Visible {
		t.Error("sorting must not touch Visible or BestDeal")
	}
}

func TestSortVisible_UnusableValuesSortAsZero(t *testing.T) {
	listings := pointers([]models.Listing{
		{ID: "five", Price: 5},
		{ID: "nan", Price: math.NaN()},
		{ID: "neg", Price: -3},
		{ID: "zero", Price: 0},
	})

	got := ids(SortVisible(listings, SortOrder{SortByPrice, Ascending}))
	want := []string{"nan", "neg", "zero", "five"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

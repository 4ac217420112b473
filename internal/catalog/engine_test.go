package catalog

import (
	"slices"
	"testing"

	"github.com/HerbHall/diskprices/internal/testutil"
	pkgcatalog "github.com/HerbHall/diskprices/pkg/catalog"
	"github.com/HerbHall/diskprices/pkg/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		testutil.NewListing(testutil.WithID("hdd-a"), testutil.WithName("Seagate IronWolf 10TB"),
			testutil.WithPricing(100, 10)),
		testutil.NewListing(testutil.WithID("hdd-b"), testutil.WithName("WD Red 10TB"),
			testutil.WithRetailer("Newegg"), testutil.WithPricing(60, 10)),
		testutil.NewListing(testutil.WithID("ssd-a"), testutil.WithName("Samsung 990 PRO 2TB"),
			testutil.WithCategory(models.CategorySSD), testutil.WithPricing(170, 2)),
		testutil.NewListing(testutil.WithID("ssd-b"), testutil.WithName("Crucial MX500 4TB"),
			testutil.WithCategory(models.CategorySSD), testutil.WithCondition(models.ConditionUsed),
			testutil.WithRetailer("eBay"), testutil.WithPricing(200, 4)),
		testutil.NewListing(testutil.WithID("ram-a"), testutil.WithName("Mystery RAM"),
			testutil.WithCategory(models.CategoryRAM), testutil.WithPricing(40, 0)),
	}
}

func TestEngine_EmbeddedCatalog(t *testing.T) {
	engine, err := NewEngine(pkgcatalog.NewCatalog())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	res := engine.Recompute(DefaultCriteria())
	if res.Count() != engine.Len() {
		t.Errorf("default criteria count = %d, want all %d", res.Count(), engine.Len())
	}
	if len(res.BestDeals) != len(models.Categories()) {
		t.Errorf("best deals = %d categories, want %d", len(res.BestDeals), len(models.Categories()))
	}
	for i := 1; i < len(res.Ordered); i++ {
		if res.Ordered[i].PricePerUnit < res.Ordered[i-1].PricePerUnit {
			t.Errorf("entries not sorted by unit price: %s before %s",
				res.Ordered[i-1].ID, res.Ordered[i].ID)
		}
	}
}

func TestEngine_DefaultScenario(t *testing.T) {
	engine := NewEngineFromListings([]models.Listing{
		testutil.NewListing(testutil.WithID("first"), testutil.WithPricing(100, 10)),
		testutil.NewListing(testutil.WithID("second"), testutil.WithPricing(60, 10)),
	})

	res := engine.Recompute(DefaultCriteria())
	if res.Count() != 2 {
		t.Fatalf("visible = %d, want 2", res.Count())
	}
	if got := res.BestDeals[models.CategoryHDD]; got != "second" {
		t.Errorf("best deal = %q, want second", got)
	}
	first, _ := engine.Listing("first")
	second, _ := engine.Listing("second")
	if first.BestDeal || !second.BestDeal {
		t.Errorf("flags: first=%v second=%v, want false/true", first.BestDeal, second.BestDeal)
	}
}

func TestEngine_SearchWithoutMatches(t *testing.T) {
	engine := NewEngineFromListings(sampleListings())

	c := DefaultCriteria()
	c.Search = "seagate exos"
	res := engine.Recompute(c)

	if !res.Empty() {
		t.Fatalf("visible = %d, want 0", res.Count())
	}
	if len(res.BestDeals) != 0 {
		t.Errorf("best deals = %v, want none", res.BestDeals)
	}
	for _, l := range engine.Listings() {
		if l.Visible || l.BestDeal {
			t.Errorf("%s: visible=%v bestDeal=%v, want both false", l.ID, l.Visible, l.BestDeal)
		}
	}
}

func TestEngine_HiddenBestDealIsCleared(t *testing.T) {
	engine := NewEngineFromListings(sampleListings())

	engine.Recompute(DefaultCriteria())
	if l, _ := engine.Listing("hdd-b"); !l.BestDeal {
		t.Fatal("hdd-b should be the HDD best deal before filtering")
	}

	c := DefaultCriteria()
	c.Retailer = "amazon"
	res := engine.Recompute(c)

	if l, _ := engine.Listing("hdd-b"); l.BestDeal || l.Visible {
		t.Errorf("hidden hdd-b: visible=%v bestDeal=%v, want false/false", l.Visible, l.BestDeal)
	}
	if got := res.BestDeals[models.CategoryHDD]; got != "hdd-a" {
		t.Errorf("HDD best deal = %q, want hdd-a", got)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngineFromListings(sampleListings())

	c := DefaultCriteria()
	c.Sort = SortOrder{Key: SortByPrice, Direction: Descending}
	first := engine.Recompute(c)
	second := engine.Recompute(c)

	a, b := first.IDs(), second.IDs()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("order differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestEngine_RefreshBestDeals(t *testing.T) {
	engine := NewEngineFromListings(sampleListings())

	c := DefaultCriteria()
	c.Category = models.CategorySSD
	engine.Recompute(c)

	res := engine.RefreshBestDeals()
	if res.Count() != engine.Len() {
		t.Errorf("count = %d, want %d", res.Count(), engine.Len())
	}
	ids := res.IDs()
	for i, l := range sampleListings() {
		if ids[i] != l.ID {
			t.Errorf("order[%d] = %s, want load order %s", i, ids[i], l.ID)
		}
	}
	if _, ok := res.BestDeals[models.CategoryRAM]; ok {
		t.Error("zero-capacity RAM listing must not become a best deal")
	}
	if res.BestDeals[models.CategoryHDD] != "hdd-b" || res.BestDeals[models.CategorySSD] != "ssd-b" {
		t.Errorf("best deals = %v", res.BestDeals)
	}
}

func TestEngine_UnpricedListingNeverBestDeal(t *testing.T) {
	engine, err := NewEngine(pkgcatalog.NewCatalogFromBytes([]byte(`
listings:
  - {id: real, name: Real, category: HDD, price: 100, capacity_tb: 10}
  - {id: garbage, name: Garbage, category: HDD, price: "call for price", capacity_tb: 10}
`)))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	for name, res := range map[string]Result{
		"refresh":   engine.RefreshBestDeals(),
		"recompute": engine.Recompute(DefaultCriteria()),
	} {
		if got := res.BestDeals[models.CategoryHDD]; got != "real" {
			t.Errorf("%s: best deal HDD = %q, want real", name, got)
		}
		if res.Count() != 2 {
			t.Errorf("%s: count = %d, unpriced listings stay visible", name, res.Count())
		}
	}
}

func TestEngine_SortStartsFromLoadOrder(t *testing.T) {
	engine := NewEngineFromListings([]models.Listing{
		testutil.NewListing(testutil.WithID("cheap"), testutil.WithPricing(50, 4)),
		testutil.NewListing(testutil.WithID("pricey"), testutil.WithPricing(90, 4)),
		testutil.NewListing(testutil.WithID("big"), testutil.WithPricing(70, 8)),
	})

	c := DefaultCriteria()
	c.Sort = SortOrder{SortByPrice, Descending}
	if got := engine.Recompute(c).IDs(); !slices.Equal(got, []string{"pricey", "big", "cheap"}) {
		t.Fatalf("price-desc order = %v", got)
	}

	// Equal capacities fall back to load order, not the previous display order.
	c.Sort = SortOrder{SortByCapacity, Ascending}
	if got := engine.Recompute(c).IDs(); !slices.Equal(got, []string{"cheap", "pricey", "big"}) {
		t.Errorf("capacity-asc order = %v, want [cheap pricey big]", got)
	}
}

func TestEngine_ListingNotFound(t *testing.T) {
	engine := NewEngineFromListings(sampleListings())
	if _, err := engine.Listing("missing"); err != ErrListingNotFound {
		t.Errorf("Listing(missing) error = %v, want ErrListingNotFound", err)
	}
}

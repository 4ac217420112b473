// Package catalog loads the storage-device listing set the site is built from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/HerbHall/diskprices/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed listings.yaml
var listingsRawData []byte

// listingsFile is the top-level structure of a listings YAML document.
type listingsFile struct {
	Listings []record `yaml:"listings"`
}

// Catalog provides lazy-loaded access to a listing set. The set is parsed
// once; callers always receive their own copy.
type Catalog struct {
	once     sync.Once
	raw      []byte
	path     string
	listings []models.Listing
	err      error
}

// NewCatalog creates a Catalog backed by the embedded listings.yaml.
func NewCatalog() *Catalog {
	return &Catalog{raw: listingsRawData}
}

// NewCatalogFromBytes creates a Catalog that parses data on first access.
func NewCatalogFromBytes(data []byte) *Catalog {
	return &Catalog{raw: data}
}

// NewCatalogFromFile creates a Catalog that reads path on first access.
func NewCatalogFromFile(path string) *Catalog {
	return &Catalog{path: path}
}

// Entries returns a copy of all listings in source order.
func (c *Catalog) Entries() ([]models.Listing, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]models.Listing, len(c.listings))
	copy(cp, c.listings)
	return cp, nil
}

// load reads and parses the listing data.
func (c *Catalog) load() {
	data := c.raw
	if c.path != "" {
		b, err := os.ReadFile(c.path)
		if err != nil {
			c.err = fmt.Errorf("catalog: read %q: %w", c.path, err)
			return
		}
		data = b
	}

	var f listingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		c.err = fmt.Errorf("catalog: parse yaml: %w", err)
		return
	}

	listings := make([]models.Listing, 0, len(f.Listings))
	seen := make(map[string]struct{}, len(f.Listings))
	for i := range f.Listings {
		l := f.Listings[i].toListing()
		if _, dup := seen[l.ID]; dup {
			c.err = fmt.Errorf("catalog: duplicate listing id %q", l.ID)
			return
		}
		seen[l.ID] = struct{}{}
		listings = append(listings, l)
	}
	c.listings = listings
}

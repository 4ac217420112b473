// Package storefront serves the listing grid over HTTP. Every request gets
// its own engine and view controller over a copy of the loaded listings,
// so no visitor state is shared between requests.
package storefront

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/HerbHall/diskprices/internal/catalog"
	"github.com/HerbHall/diskprices/internal/event"
	"github.com/HerbHall/diskprices/internal/metrics"
	"github.com/HerbHall/diskprices/internal/plugin"
	"github.com/HerbHall/diskprices/internal/view"
	pkgcatalog "github.com/HerbHall/diskprices/pkg/catalog"
	"github.com/HerbHall/diskprices/pkg/models"
)

const (
	defaultClickRate  = 10.0
	defaultClickBurst = 20
)

// Plugin is the "catalog" module: it loads the listing source once and
// exposes it under /api/v1/catalog.
type Plugin struct {
	source    *pkgcatalog.Catalog
	publisher event.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger

	listings []models.Listing
	options  catalog.Options
	limiter  *rate.Limiter
}

// New creates the catalog plugin over source. publisher receives buy-click
// events and m may be nil.
func New(source *pkgcatalog.Catalog, publisher event.Publisher, m *metrics.Metrics) *Plugin {
	return &Plugin{source: source, publisher: publisher, metrics: m}
}

func (p *Plugin) Name() string    { return "catalog" }
func (p *Plugin) Version() string { return "0.1.0" }

// Init loads the listings and sets up the click rate limiter from
// click_rate (events per second) and click_burst.
func (p *Plugin) Init(cfg *viper.Viper, logger *zap.Logger) error {
	p.logger = logger

	entries, err := p.source.Entries()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	p.listings = entries
	engine := catalog.NewEngineFromListings(slices.Clone(entries))
	p.options = engine.Options()

	limit := cfg.GetFloat64("click_rate")
	if limit <= 0 {
		limit = defaultClickRate
	}
	burst := cfg.GetInt("click_burst")
	if burst <= 0 {
		burst = defaultClickBurst
	}
	p.limiter = rate.NewLimiter(rate.Limit(limit), burst)

	p.logger.Info("catalog module initialized",
		zap.Int("listings", engine.Len()),
		zap.Float64("click_rate", limit),
		zap.Int("click_burst", burst),
	)
	return nil
}

func (p *Plugin) Start(_ context.Context) error {
	p.logger.Info("catalog module started")
	return nil
}

func (p *Plugin) Stop() error {
	p.logger.Info("catalog module stopped")
	return nil
}

func (p *Plugin) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: http.MethodGet, Path: "/listings", Handler: p.handleListings},
		{Method: http.MethodGet, Path: "/options", Handler: p.handleOptions},
		{Method: http.MethodGet, Path: "/view", Handler: p.handleView},
		{Method: http.MethodPost, Path: "/listings/{id}/click", Handler: p.handleClick},
	}
}

// session builds a fresh engine and controller for one request. The
// caller must Close the controller.
func (p *Plugin) session() (*catalog.Engine, *view.Controller) {
	engine := catalog.NewEngineFromListings(slices.Clone(p.listings))
	ctrl := view.NewController(engine, nil, nil,
		view.WithPublisher(p.publisher),
		view.WithLogger(p.logger),
		view.WithMetrics(p.metrics),
	)
	return engine, ctrl
}

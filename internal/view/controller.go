// Package view keeps the listing grid, the best-deal badges and the page URL
// in step with the visitor's filter, search and sort selections.
package view

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/diskprices/internal/analytics"
	"github.com/HerbHall/diskprices/internal/catalog"
	"github.com/HerbHall/diskprices/internal/event"
	"github.com/HerbHall/diskprices/internal/metrics"
)

// View is everything the presentation layer needs after a pass.
type View struct {
	Criteria  catalog.Criteria  `json:"criteria"`
	Order     []string          `json:"order"`
	Count     int               `json:"count"`
	Empty     bool              `json:"empty"`
	Label     string            `json:"label"`
	BestDeals catalog.BestDeals `json:"best_deals"`
	Query     string            `json:"query"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the search debounce scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.search = s }
}

// WithSearchDebounce sets the quiet window for the default scheduler.
func WithSearchDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithPublisher sets where buy-click events are published.
func WithPublisher(p event.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns the criteria of one page session and runs
// filter -> best deal -> sort -> render -> URL sync on every change.
// Every pass runs to completion under one lock; the debounced search is
// the only work that starts asynchronously.
type Controller struct {
	mu        sync.Mutex
	engine    *catalog.Engine
	criteria  catalog.Criteria
	last      View
	searchSeq uint64
	typed     string
	typing    bool

	renderer  Renderer
	location  Location
	search    Scheduler
	debounce  time.Duration
	publisher event.Publisher
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewController creates a controller over engine. renderer and location
// may be nil when there is nothing to draw or no address bar to sync.
func NewController(engine *catalog.Engine, renderer Renderer, location Location, opts ...Option) *Controller {
	c := &Controller{
		engine:   engine,
		criteria: catalog.DefaultCriteria(),
		renderer: renderer,
		location: location,
		debounce: DefaultSearchDebounce,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.search == nil {
		c.search = NewDebounceScheduler(c.debounce)
	}
	return c
}

// Load initializes the criteria from the page URL. When the query carries a
// recognized parameter the criteria are decoded from it and a full pass
// runs. Otherwise the defaults stay, only the best-deal pass runs and the
// URL is left alone.
func (c *Controller) Load(query url.Values) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	criteria, recognized := catalog.DecodeQuery(query, c.engine.Options())
	if !recognized {
		c.criteria = catalog.DefaultCriteria()
		c.finish(c.engine.RefreshBestDeals(), metrics.TriggerLoad, false)
		return c.last
	}

	c.criteria = criteria
	c.recompute(metrics.TriggerLoad)
	return c.last
}

// SetCategory applies the category select. Unknown values clear the filter.
func (c *Controller) SetCategory(v string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.engine.Options().Category(v)
	if !ok && v != "" {
		c.logger.Debug("unknown category, clearing filter", zap.String("value", v))
	}
	c.criteria.Category = cat
	c.applyTyped()
	c.recompute(metrics.TriggerSelect)
	return c.last
}

// SetRetailer applies the retailer select. Unknown values clear the filter.
func (c *Controller) SetRetailer(v string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.engine.Options().Retailer(v)
	if !ok && v != "" {
		c.logger.Debug("unknown retailer, clearing filter", zap.String("value", v))
	}
	c.criteria.Retailer = r
	c.applyTyped()
	c.recompute(metrics.TriggerSelect)
	return c.last
}

// SetCondition applies the condition select. Unknown values clear the filter.
func (c *Controller) SetCondition(v string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	cond, ok := c.engine.Options().Condition(v)
	if !ok && v != "" {
		c.logger.Debug("unknown condition, clearing filter", zap.String("value", v))
	}
	c.criteria.Condition = cond
	c.applyTyped()
	c.recompute(metrics.TriggerSelect)
	return c.last
}

// SetSort applies the sort select ("price-desc"). Invalid values fall back
// to the default order.
func (c *Controller) SetSort(v string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := catalog.ParseSortOrder(v)
	if !ok {
		c.logger.Debug("invalid sort, using default", zap.String("value", v))
	}
	c.criteria.Sort = o
	c.applyTyped()
	c.recompute(metrics.TriggerSelect)
	return c.last
}

// Search records a keystroke in the search field. The pass runs once no
// further keystroke arrives within the debounce window, using the most
// recent term only.
func (c *Controller) Search(term string) {
	c.mu.Lock()
	c.searchSeq++
	seq := c.searchSeq
	c.typed, c.typing = term, true
	c.mu.Unlock()

	c.metrics.SearchInput()
	c.search.Schedule(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.searchSeq {
			return
		}
		c.typing = false
		c.criteria.Search = term
		c.recompute(metrics.TriggerSearch)
	})
}

// ClearSearch empties the search field immediately, dropping any pending
// debounced search.
func (c *Controller) ClearSearch() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchSeq++
	c.typing = false
	c.search.Cancel()
	c.criteria.Search = ""
	c.recompute(metrics.TriggerClear)
	return c.last
}

// Criteria returns the current criteria.
func (c *Controller) Criteria() catalog.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// View returns the most recently rendered view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// BuyClicked publishes the buy-click event for listing id, carrying whether
// the listing is flagged best deal at click time.
func (c *Controller) BuyClicked(ctx context.Context, id, destination string) (analytics.BuyClick, error) {
	c.mu.Lock()
	l, err := c.engine.Listing(id)
	c.mu.Unlock()
	if err != nil {
		return analytics.BuyClick{}, fmt.Errorf("buy click %q: %w", id, err)
	}

	click := analytics.NewBuyClick(l, destination, c.now())
	if c.publisher == nil {
		return click, nil
	}
	err = c.publisher.Publish(ctx, event.Event{
		Topic:     analytics.TopicBuyClicked,
		Source:    "view",
		Timestamp: click.ClickedAt,
		Payload:   click,
	})
	if err != nil {
		return click, fmt.Errorf("publish buy click: %w", err)
	}
	return click, nil
}

// Close stops the search scheduler. A pending search is discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	c.searchSeq++
	c.typing = false
	c.mu.Unlock()
	c.search.Stop()
}

// applyTyped moves a search term still waiting on the debounce into the
// criteria and drops the pending pass, so a select change sees the search
// field as typed. Callers hold c.mu.
func (c *Controller) applyTyped() {
	if !c.typing {
		return
	}
	c.searchSeq++
	c.typing = false
	c.search.Cancel()
	c.criteria.Search = c.typed
}

// recompute runs a full pass for the current criteria. Callers hold c.mu.
func (c *Controller) recompute(trigger string) {
	c.finish(c.engine.Recompute(c.criteria), trigger, true)
}

// finish renders res and, when syncURL is set, writes the criteria to the
// location. Callers hold c.mu.
func (c *Controller) finish(res catalog.Result, trigger string, syncURL bool) {
	v := View{
		Criteria:  c.criteria,
		Order:     res.IDs(),
		Count:     res.Count(),
		Empty:     res.Empty(),
		Label:     catalog.ResultsLabel(res.Count()),
		BestDeals: res.BestDeals,
		Query:     catalog.QueryString(c.criteria),
	}
	c.last = v

	if c.renderer != nil {
		c.renderer.Render(v)
	}
	if syncURL && c.location != nil {
		c.location.Replace(v.Query)
	}

	c.metrics.ObserveRecompute(trigger, v.Count)
	c.logger.Debug("view recomputed",
		zap.String("trigger", trigger),
		zap.Int("visible", v.Count),
		zap.Int("best_deals", len(v.BestDeals)),
		zap.String("query", v.Query),
	)
}

// Package metrics defines the Prometheus collectors exported by DiskPrices.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "diskprices"

// Recompute triggers used as label values.
const (
	TriggerLoad   = "load"
	TriggerSelect = "select"
	TriggerSearch = "search"
	TriggerClear  = "clear"
)

// Metrics groups the view and click collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	recomputes   *prometheus.CounterVec
	searchInputs prometheus.Counter
	visible      prometheus.Histogram
	buyClicks    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "recomputes_total",
			Help:      "Filter/best-deal/sort passes, by trigger.",
		}, []string{"trigger"}),
		searchInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "search_inputs_total",
			Help:      "Search keystrokes received before debouncing.",
		}),
		visible: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "visible_listings",
			Help:      "Visible listings after each pass.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
		buyClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "listing",
			Name:      "buy_clicks_total",
			Help:      "Buy-link activations, by category and best-deal flag.",
		}, []string{"category", "best_deal"}),
	}
	reg.MustRegister(m.recomputes, m.searchInputs, m.visible, m.buyClicks)
	return m
}

// ObserveRecompute records one pass and its visible count.
func (m *Metrics) ObserveRecompute(trigger string, visible int) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(trigger).Inc()
	m.visible.Observe(float64(visible))
}

// SearchInput records one search keystroke.
func (m *Metrics) SearchInput() {
	if m == nil {
		return
	}
	m.searchInputs.Inc()
}

// BuyClick records one buy-link activation.
func (m *Metrics) BuyClick(category string, bestDeal bool) {
	if m == nil {
		return
	}
	m.buyClicks.WithLabelValues(category, strconv.FormatBool(bestDeal)).Inc()
}

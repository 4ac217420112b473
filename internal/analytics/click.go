// Package analytics defines the buy-click notification and the subscriber
// that reports it. Storage and aggregation belong to external collaborators
// that subscribe to the same topic.
package analytics

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/diskprices/internal/event"
	"github.com/HerbHall/diskprices/internal/metrics"
	"github.com/HerbHall/diskprices/pkg/models"
)

// TopicBuyClicked is published each time a buy link is activated.
const TopicBuyClicked = "listing.buy.clicked"

// noAffiliate is reported for links without an affiliate tag.
const noAffiliate = "none"

// BuyClick is the payload for TopicBuyClicked events.
type BuyClick struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   string          `json:"product"`
	Category  models.Category `json:"category"`
	Retailer  string          `json:"retailer"`
	Affiliate string          `json:"affiliate"`
	BestDeal  bool            `json:"best_deal"`
	ClickedAt time.Time       `json:"clicked_at"`
}

// NewBuyClick builds the payload for a click on l's buy link. destination
// is the followed URL; the listing URL is used when it is empty. The
// retailer is the destination host.
func NewBuyClick(l models.Listing, destination string, now time.Time) BuyClick {
	if destination == "" {
		destination = l.URL
	}
	affiliate := l.AffiliateTag
	if affiliate == "" {
		affiliate = noAffiliate
	}
	return BuyClick{
		ID:        uuid.New().String(),
		ProductID: l.ID,
		Product:   l.Name,
		Category:  l.Category,
		Retailer:  hostname(destination),
		Affiliate: affiliate,
		BestDeal:  l.BestDeal,
		ClickedAt: now.UTC(),
	}
}

func hostname(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return u.Hostname()
}

// Recorder reports buy clicks to the log and to metrics.
type Recorder struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRecorder creates a Recorder. m may be nil.
func NewRecorder(logger *zap.Logger, m *metrics.Metrics) *Recorder {
	return &Recorder{logger: logger, metrics: m}
}

// Handle is an event.Handler for TopicBuyClicked.
func (r *Recorder) Handle(_ context.Context, e event.Event) {
	click, ok := e.Payload.(BuyClick)
	if !ok {
		r.logger.Warn("unexpected payload type for buy click event", zap.String("topic", e.Topic))
		return
	}

	r.metrics.BuyClick(string(click.Category), click.BestDeal)
	r.logger.Info("affiliate click",
		zap.String("click_id", click.ID),
		zap.String("product_id", click.ProductID),
		zap.String("product", click.Product),
		zap.String("retailer", click.Retailer),
		zap.String("affiliate", click.Affiliate),
		zap.Bool("best_deal", click.BestDeal),
	)
}

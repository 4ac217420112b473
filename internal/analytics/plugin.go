package analytics

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HerbHall/diskprices/internal/event"
	"github.com/HerbHall/diskprices/internal/metrics"
	"github.com/HerbHall/diskprices/internal/plugin"
)

// Plugin subscribes the click Recorder to the event bus.
type Plugin struct {
	bus     *event.Bus
	metrics *metrics.Metrics
	logger  *zap.Logger
	unsub   func()
}

// New creates the analytics plugin. m may be nil.
func New(bus *event.Bus, m *metrics.Metrics) *Plugin {
	return &Plugin{bus: bus, metrics: m}
}

func (p *Plugin) Name() string    { return "analytics" }
func (p *Plugin) Version() string { return "0.1.0" }

func (p *Plugin) Init(_ *viper.Viper, logger *zap.Logger) error {
	p.logger = logger
	p.logger.Info("analytics module initialized")
	return nil
}

func (p *Plugin) Start(_ context.Context) error {
	rec := NewRecorder(p.logger, p.metrics)
	p.unsub = p.bus.Subscribe(TopicBuyClicked, rec.Handle)
	p.logger.Info("analytics module started", zap.String("topic", TopicBuyClicked))
	return nil
}

func (p *Plugin) Stop() error {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
	p.logger.Info("analytics module stopped")
	return nil
}

func (p *Plugin) Routes() []plugin.Route {
	return nil
}

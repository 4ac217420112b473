// Package plugin defines the module contract used by the DiskPrices server
// and the registry that drives module lifecycles.
package plugin

import (
	"context"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Route is an HTTP route exposed by a module. Path is relative to
// /api/v1/{module name}.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Plugin is a server module ("catalog", "analytics").
type Plugin interface {
	Name() string
	Version() string

	// Init receives the plugins.<name> config subtree (never nil) and a
	// logger named after the module.
	Init(config *viper.Viper, logger *zap.Logger) error

	// Start is called once every enabled module is initialized.
	Start(ctx context.Context) error

	// Stop is called in reverse registration order.
	Stop() error

	Routes() []Route
}

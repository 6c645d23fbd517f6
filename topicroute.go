// Package topicroute provides a top-level convenience entry point for
// building a topic router with minimal boilerplate.
//
// Usage:
//
//	import "github.com/curatorlabs/topicroute"
//
//	r, err := topicroute.New()                                  // built-in table
//	r, err := topicroute.New(topicroute.WithConfigPath("r.yaml"))
//	r, err := topicroute.New(topicroute.WithLogger(logger), topicroute.WithMetrics(nil))
//
// This is a thin wrapper around [router.New] plus config loading; use
// the router and config packages directly for finer control.
package topicroute

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/curatorlabs/topicroute/config"
	"github.com/curatorlabs/topicroute/internal/metrics"
	"github.com/curatorlabs/topicroute/router"
)

// Option configures the router created by [New].
type Option func(*builder)

type builder struct {
	cfg         *config.Config
	configPath  string
	logger      *zap.Logger
	withMetrics bool
	registerer  prometheus.Registerer
}

// WithConfig uses a pre-built configuration, skipping file loading.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) { b.cfg = cfg }
}

// WithConfigPath loads configuration from a YAML file on top of the
// built-in defaults.
func WithConfigPath(path string) Option {
	return func(b *builder) { b.configPath = path }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) { b.logger = logger }
}

// WithMetrics attaches a prometheus decision collector. A nil
// registerer uses the default prometheus registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(b *builder) {
		b.withMetrics = true
		b.registerer = reg
	}
}

// New creates a [router.Router] from the given options.
func New(opts ...Option) (*router.Router, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	cfg := b.cfg
	if cfg == nil {
		loaded, err := config.NewLoader().WithConfigPath(b.configPath).Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	routerOpts := make([]router.Option, 0, 2)
	if b.logger != nil {
		routerOpts = append(routerOpts, router.WithLogger(b.logger))
	}
	if b.withMetrics {
		routerOpts = append(routerOpts, router.WithObserver(metrics.NewCollector(b.registerer)))
	}
	return router.New(cfg, routerOpts...)
}

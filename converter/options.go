package converter

import (
	"log/slog"
	"time"

	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/metrics"
	"github.com/auscope/iso19115/resolver"
)

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	registry *resolver.Registry
	thesauri *keyword.Registry
	clock    func() time.Time
}

// Option configures a Converter.
type Option func(*options)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRegistry replaces the codelist resolver registry.
func WithRegistry(r *resolver.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithThesauri replaces the thesaurus registry.
func WithThesauri(r *keyword.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.thesauri = r
		}
	}
}

// WithClock sets the time source used for defaulted dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   slog.Default(),
		registry: resolver.Default(),
		thesauri: keyword.Default(),
		clock:    time.Now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

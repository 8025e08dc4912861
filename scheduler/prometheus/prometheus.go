// Package prometheus is an opt-in scheduler.Metrics implementation backed
// by github.com/prometheus/client_golang. A Scheduler runs with
// scheduler.NoOpMetrics by default; call SetMetrics(prometheus.New(...))
// to expose frame-loop behavior on a /metrics endpoint instead.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vortexkit/vortex/scheduler"
)

// Config configures the metric namespace/registry the collectors are
// registered under.
type Config struct {
	// Namespace is the metrics namespace (default: "vortex").
	Namespace string

	// Registry is the Prometheus registry collectors are registered
	// against (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer

	// FrameDurationBuckets are the histogram buckets for frame duration, in
	// seconds (default: prometheus.DefBuckets).
	FrameDurationBuckets []float64
}

// Option configures a Config.
type Option func(*Config)

// WithNamespace overrides the default "vortex" metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithRegistry overrides the default registerer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

// WithFrameDurationBuckets overrides the frame-duration histogram buckets.
func WithFrameDurationBuckets(buckets []float64) Option {
	return func(c *Config) { c.FrameDurationBuckets = buckets }
}

func defaultConfig() Config {
	return Config{
		Namespace:            "vortex",
		Registry:             prometheus.DefaultRegisterer,
		FrameDurationBuckets: prometheus.DefBuckets,
	}
}

// Metrics is a scheduler.Metrics backed by Prometheus collectors. Construct
// with New and install it via (*scheduler.Scheduler).SetMetrics.
type Metrics struct {
	frameDuration  prometheus.Histogram
	prioWrites     prometheus.Counter
	plainWrites    prometheus.Counter
	reads          prometheus.Counter
	afters         prometheus.Counter
	framesRun      prometheus.Counter
	clock          prometheus.Gauge
}

// New builds a Metrics collector and registers it against opts' registry
// (prometheus.DefaultRegisterer unless overridden).
func New(opts ...Option) *Metrics {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		frameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "frame_duration_seconds",
			Help:      "Wall-clock duration of each executed frame tick.",
			Buckets:   cfg.FrameDurationBuckets,
		}),
		prioWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "priority_writes_total",
			Help:      "Total priority write tasks drained across all frames.",
		}),
		plainWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "writes_total",
			Help:      "Total plain write tasks drained across all frames.",
		}),
		reads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "reads_total",
			Help:      "Total read tasks drained across all frames.",
		}),
		afters: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "after_tasks_total",
			Help:      "Total after-tasks drained across all frames.",
		}),
		framesRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "frames_total",
			Help:      "Total number of frame ticks executed.",
		}),
		clock: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: "scheduler",
			Name:      "clock",
			Help:      "The scheduler's current monotonic clock value.",
		}),
	}
}

// ObserveFrame implements scheduler.Metrics.
func (m *Metrics) ObserveFrame(prioWrites, plainWrites, reads, afters int, dur time.Duration) {
	m.prioWrites.Add(float64(prioWrites))
	m.plainWrites.Add(float64(plainWrites))
	m.reads.Add(float64(reads))
	m.afters.Add(float64(afters))
	m.framesRun.Inc()
	m.frameDuration.Observe(dur.Seconds())
}

// ObserveClock implements scheduler.Metrics.
func (m *Metrics) ObserveClock(value uint64) {
	m.clock.Set(float64(value))
}

var _ scheduler.Metrics = (*Metrics)(nil)

package middleware

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/treeseq/pkg/treeseq"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "treeseq").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "treeseq",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the builder instruction collectors.
type Metrics struct {
	instructionsTotal *prometheus.CounterVec
	attributesTotal   *prometheus.CounterVec
}

// Global collectors created on first call to Prometheus().
var (
	globalMetrics   *Metrics
	globalMetricsMu sync.Mutex
)

// NewMetrics registers the collectors with the configured registry.
// Registering twice against the same registry panics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		instructionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instructions_total",
			Help:        "Total builder instructions by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		attributesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attributes_total",
			Help:        "Total attribute instructions by attribute name",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),
	}
}

// Middleware returns a Middleware that feeds m.
func (m *Metrics) Middleware() Middleware {
	return Observe(func(in Instruction) {
		m.instructionsTotal.WithLabelValues(in.Kind).Inc()
		if in.Kind == KindAttribute {
			m.attributesTotal.WithLabelValues(attributeLabel(in.Name)).Inc()
		}
	})
}

// Prometheus returns a Middleware backed by process-wide collectors,
// created from opts on the first call.
//
// Metrics collected:
//   - treeseq_instructions_total{kind}: element, component, attribute, close
//   - treeseq_attributes_total{name}: class, ChildContent, on* event names, other
func Prometheus(opts ...MetricsOption) Middleware {
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = NewMetrics(opts...)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()
	return m.Middleware()
}

// GetMetrics returns the global collectors, or nil before Prometheus is called.
func GetMetrics() *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}

// attributeLabel keeps label cardinality bounded.
func attributeLabel(name string) string {
	switch {
	case name == treeseq.AttrClass, name == treeseq.ChildContent:
		return name
	case strings.HasPrefix(name, "on"):
		return name
	default:
		return "other"
	}
}

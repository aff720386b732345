package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// HistoryMetricsCollector handles historical turn load metrics.
// It satisfies the load service's LoadMetrics interface.
type HistoryMetricsCollector struct {
	loadsTotal *prometheus.CounterVec
}

// NewHistoryMetricsCollector creates a new history metrics collector
func NewHistoryMetricsCollector() *HistoryMetricsCollector {
	return &HistoryMetricsCollector{
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "history_turn_loads_total",
				Help:      "Total number of historical turn load attempts by player and outcome",
			},
			[]string{"player", "outcome"},
		),
	}
}

// RecordLoadSuccess counts one successful turn load
func (c *HistoryMetricsCollector) RecordLoadSuccess(player, turnNumber int) {
	c.loadsTotal.WithLabelValues(strconv.Itoa(player), "success").Inc()
}

// RecordLoadFailure counts one failed turn load
func (c *HistoryMetricsCollector) RecordLoadFailure(player, turnNumber int) {
	c.loadsTotal.WithLabelValues(strconv.Itoa(player), "failure").Inc()
}

// Register registers all history metrics with the Prometheus registry
func (c *HistoryMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	return Registry.Register(c.loadsTotal)
}

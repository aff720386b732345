package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// ScoreMetricsCollector handles score presentation metrics
type ScoreMetricsCollector struct {
	chartBuildsTotal *prometheus.CounterVec
	tableBuildsTotal *prometheus.CounterVec
}

// NewScoreMetricsCollector creates a new score metrics collector
func NewScoreMetricsCollector() *ScoreMetricsCollector {
	return &ScoreMetricsCollector{
		chartBuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "score_chart_builds_total",
				Help:      "Total number of score charts built by mode",
			},
			[]string{"by_team", "cumulative"},
		),
		tableBuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "score_table_builds_total",
				Help:      "Total number of score tables built by mode",
			},
			[]string{"by_team", "difference"},
		),
	}
}

// RecordChartBuild counts one chart build
func (c *ScoreMetricsCollector) RecordChartBuild(byTeam, cumulative bool) {
	c.chartBuildsTotal.WithLabelValues(strconv.FormatBool(byTeam), strconv.FormatBool(cumulative)).Inc()
}

// RecordTableBuild counts one table build
func (c *ScoreMetricsCollector) RecordTableBuild(byTeam, difference bool) {
	c.tableBuildsTotal.WithLabelValues(strconv.FormatBool(byTeam), strconv.FormatBool(difference)).Inc()
}

// Register registers all score metrics with the Prometheus registry
func (c *ScoreMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.chartBuildsTotal,
		c.tableBuildsTotal,
	}
	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

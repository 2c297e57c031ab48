// Package metrics provides Prometheus instrumentation for move activity on a
// district graph. The core packages stay metrics-free; callers that drive
// moves (the CLI, a search process) record through a Collector.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Rejection reason labels for the rejected-moves counter.
const (
	ReasonSameDistrict = "same_district"
	ReasonNotBordering = "not_bordering"
	ReasonUnknown      = "unknown_vertex"
)

// Collector holds the move-activity metrics for one graph instance.
type Collector struct {
	movesApplied  prometheus.Counter
	movesRejected *prometheus.CounterVec
	borderGauge   prometheus.Gauge
}

// NewCollector creates and registers the collectors on reg; a nil reg falls
// back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		movesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "redistrict",
			Name:      "moves_total",
			Help:      "Vertex moves applied to the district graph.",
		}),
		movesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redistrict",
			Name:      "moves_rejected_total",
			Help:      "Vertex moves rejected, by reason.",
		}, []string{"reason"}),
		borderGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "redistrict",
			Name:      "border_vertices",
			Help:      "Current number of border vertices.",
		}),
	}
	reg.MustRegister(c.movesApplied, c.movesRejected, c.borderGauge)

	return c
}

// MoveApplied records one successful move.
func (c *Collector) MoveApplied() { c.movesApplied.Inc() }

// MoveRejected records one rejected move under the given reason label.
func (c *Collector) MoveRejected(reason string) {
	c.movesRejected.WithLabelValues(reason).Inc()
}

// SetBorderVertices updates the border-vertex gauge.
func (c *Collector) SetBorderVertices(n int) { c.borderGauge.Set(float64(n)) }

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"smartptr/infra/memory"
)

// ReleaseCollector counts release events per ownership kind. Install it
// with memory.SetNotifier and register it like any other collector.
type ReleaseCollector struct {
	releases *prometheus.CounterVec
	lastSeq  prometheus.Gauge
}

// NewReleaseCollector creates a collector with every known kind pre-seeded at zero.
func NewReleaseCollector() *ReleaseCollector {
	c := &ReleaseCollector{
		releases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartptr_releases_total",
				Help: "Total allocations released by owner handles",
			},
			[]string{"kind"},
		),
		lastSeq: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "smartptr_last_release_seq",
				Help: "Sequence number of the most recent release",
			},
		),
	}
	for _, k := range []memory.Kind{memory.Exclusive, memory.Shared} {
		c.releases.WithLabelValues(k.String())
	}
	return c
}

func (c *ReleaseCollector) Released(ev memory.Event) {
	c.releases.WithLabelValues(ev.Kind.String()).Inc()
	c.lastSeq.Set(float64(ev.Seq))
}

// Register adds the collector to reg, or to the default registry if reg is nil.
func (c *ReleaseCollector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return reg.Register(c)
}

func (c *ReleaseCollector) Describe(ch chan<- *prometheus.Desc) {
	c.releases.Describe(ch)
	c.lastSeq.Describe(ch)
}

func (c *ReleaseCollector) Collect(ch chan<- prometheus.Metric) {
	c.releases.Collect(ch)
	c.lastSeq.Collect(ch)
}

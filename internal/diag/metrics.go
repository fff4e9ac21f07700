// Package diag exposes a running world over HTTP: Prometheus metrics fed
// from loop stats, a text dump of the running scene tree, and a health
// check.
package diag

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/ranger"
)

// Metrics mirrors ranger.Stats into Prometheus gauges.
type Metrics struct {
	fps       prometheus.Gauge
	ups       prometheus.Gauge
	phase     *prometheus.GaugeVec
	snapshots prometheus.Counter
}

var _ ranger.StatsObserver = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ranger",
			Name:      "fps",
			Help:      "Frames rendered per second over the last stats window.",
		}),
		ups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ranger",
			Name:      "ups",
			Help:      "Fixed updates run per second over the last stats window.",
		}),
		phase: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ranger",
			Name:      "frame_phase_seconds",
			Help:      "Mean time per frame spent in each loop phase.",
		}, []string{"phase"}),
		snapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ranger",
			Name:      "stats_snapshots_total",
			Help:      "Number of stats snapshots published by the loop.",
		}),
	}
	reg.MustRegister(m.fps, m.ups, m.phase, m.snapshots)
	return m
}

// ObserveStats updates every gauge from s.
func (m *Metrics) ObserveStats(s ranger.Stats) {
	m.fps.Set(s.FPS)
	m.ups.Set(s.UPS)
	m.phase.WithLabelValues("render").Set(s.AvgRender.Seconds())
	m.phase.WithLabelValues("update").Set(s.AvgUpdate.Seconds())
	m.phase.WithLabelValues("blit").Set(s.AvgBlit.Seconds())
	m.snapshots.Inc()
}

// TreeSnapshot holds the latest scene tree dump. It is written from the
// loop goroutine and read by HTTP handlers.
type TreeSnapshot struct {
	text atomic.Pointer[string]
}

// Set replaces the snapshot.
func (t *TreeSnapshot) Set(s string) {
	t.text.Store(&s)
}

// String returns the snapshot, or "" before the first Set.
func (t *TreeSnapshot) String() string {
	if p := t.text.Load(); p != nil {
		return *p
	}
	return ""
}

// TreeObserver returns a stats observer that refreshes snap with the
// running scene's tree each time stats are published, roughly once per
// second.
func TreeObserver(sm *ranger.SceneManager, snap *TreeSnapshot) ranger.StatsObserver {
	return ranger.StatsObserverFunc(func(ranger.Stats) {
		running := sm.RunningScene()
		if running.IsNil() {
			snap.Set("")
			return
		}
		snap.Set(ranger.PrintTree(running))
	})
}

// Package reactiveprom exports the counters of a reactive.Runtime to
// Prometheus.
package reactiveprom

import (
	"github.com/delaneyj/proxyparty/reactive"
	"github.com/prometheus/client_golang/prometheus"
)

type RuntimeCollector struct {
	rt *reactive.Runtime

	effectsCreated *prometheus.Desc
	effectRuns     *prometheus.Desc
	tracks         *prometheus.Desc
	triggers       *prometheus.Desc
	scheduled      *prometheus.Desc
	warnings       *prometheus.Desc
}

// NewRuntimeCollector describes rt. constLabels tell runtimes apart when
// several are registered.
func NewRuntimeCollector(rt *reactive.Runtime, constLabels prometheus.Labels) *RuntimeCollector {
	return &RuntimeCollector{
		rt: rt,

		effectsCreated: prometheus.NewDesc(
			"proxyparty_effects_created_total",
			"Total number of effects created",
			nil, constLabels,
		),
		effectRuns: prometheus.NewDesc(
			"proxyparty_effect_runs_total",
			"Total number of tracked effect runs",
			nil, constLabels,
		),
		tracks: prometheus.NewDesc(
			"proxyparty_tracks_total",
			"Total number of new dependencies recorded",
			nil, constLabels,
		),
		triggers: prometheus.NewDesc(
			"proxyparty_triggers_total",
			"Total number of triggers that reached a tracked target",
			nil, constLabels,
		),
		scheduled: prometheus.NewDesc(
			"proxyparty_scheduled_total",
			"Total number of runs handed to an effect scheduler",
			nil, constLabels,
		),
		warnings: prometheus.NewDesc(
			"proxyparty_warnings_total",
			"Total number of warnings raised",
			nil, constLabels,
		),
	}
}

func (rc *RuntimeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- rc.effectsCreated
	ch <- rc.effectRuns
	ch <- rc.tracks
	ch <- rc.triggers
	ch <- rc.scheduled
	ch <- rc.warnings
}

func (rc *RuntimeCollector) Collect(ch chan<- prometheus.Metric) {
	stats := rc.rt.Stats()

	ch <- prometheus.MustNewConstMetric(rc.effectsCreated, prometheus.CounterValue, float64(stats.EffectsCreated))
	ch <- prometheus.MustNewConstMetric(rc.effectRuns, prometheus.CounterValue, float64(stats.EffectRuns))
	ch <- prometheus.MustNewConstMetric(rc.tracks, prometheus.CounterValue, float64(stats.Tracks))
	ch <- prometheus.MustNewConstMetric(rc.triggers, prometheus.CounterValue, float64(stats.Triggers))
	ch <- prometheus.MustNewConstMetric(rc.scheduled, prometheus.CounterValue, float64(stats.Scheduled))
	ch <- prometheus.MustNewConstMetric(rc.warnings, prometheus.CounterValue, float64(stats.Warnings))
}

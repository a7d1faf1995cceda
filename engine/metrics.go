package engine

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/format"
)

// HashIndexBuilds counts hash index builds per key kind.
var HashIndexBuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "keyidx",
	Subsystem: "engine",
	Name:      "hash_index_builds_total",
	Help:      "Number of hash indexes built, by key kind.",
}, []string{"kind"})

// HashIndexBuildDuration observes how long each hash index build takes.
var HashIndexBuildDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "keyidx",
	Subsystem: "engine",
	Name:      "hash_index_build_duration_seconds",
	Help:      "Time spent building a hash index, by key kind.",
	Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
}, []string{"kind"})

// Lookups counts single key lookups by kind and by result: position, range,
// mask, not_found or type_mismatch.
var Lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "keyidx",
	Subsystem: "engine",
	Name:      "lookups_total",
	Help:      "Number of single key lookups, by key kind and result.",
}, []string{"kind", "result"})

// IndexerTargets counts batch lookup targets that hit or were missing.
var IndexerTargets = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "keyidx",
	Subsystem: "engine",
	Name:      "indexer_targets_total",
	Help:      "Number of batch lookup targets, by key kind and result.",
}, []string{"kind", "result"})

// Collectors returns the collectors updated by engines created with WithMetrics(true).
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{HashIndexBuilds, HashIndexBuildDuration, Lookups, IndexerTargets}
}

func observeBuild(kind format.Kind, elapsed time.Duration) {
	HashIndexBuilds.WithLabelValues(kind.String()).Inc()
	HashIndexBuildDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

func lookupResult(loc Loc, err error) string {
	switch {
	case errors.Is(err, errs.ErrTypeMismatch):
		return "type_mismatch"
	case err != nil:
		return "not_found"
	}

	switch loc.(type) {
	case Position:
		return "position"
	case Range:
		return "range"
	default:
		return "mask"
	}
}

func (b *base[T]) observeLookup(loc Loc, err error) {
	if !b.cfg.metrics {
		return
	}
	Lookups.WithLabelValues(b.kind.String(), lookupResult(loc, err)).Inc()
}

func (b *base[T]) observeTargets(hits, misses int) {
	if !b.cfg.metrics {
		return
	}
	IndexerTargets.WithLabelValues(b.kind.String(), "hit").Add(float64(hits))
	IndexerTargets.WithLabelValues(b.kind.String(), "missing").Add(float64(misses))
}

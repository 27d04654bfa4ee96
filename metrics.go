package dynlist

import (
	"sync/atomic"
	"time"
)

// Op identifies a rebuilding mutation.
type Op uint8

const (
	// OpSet replaces one element.
	OpSet Op = iota + 1
	// OpInsert splices one element in.
	OpInsert
	// OpRemoveAt removes the element at an index (also used by Remove).
	OpRemoveAt
	// OpRemoveAll removes every occurrence of a value.
	OpRemoveAll
)

// String returns the lowercase name of the op.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpInsert:
		return "insert"
	case OpRemoveAt:
		return "remove_at"
	case OpRemoveAll:
		return "remove_all"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rebuildHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordRebuild(op dynlist.Op, elements int, d time.Duration, err error) {
//	    p.rebuildHistogram.WithLabelValues(op.String()).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordAdd is called after each Add.
	RecordAdd(duration time.Duration, err error)

	// RecordRebuild is called after each rebuilding mutation.
	// elements is the logical length after the rebuild (or before, on error).
	RecordRebuild(op Op, elements int, duration time.Duration, err error)

	// RecordLookup is called after each Get.
	RecordLookup(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)              {}
func (NoopMetricsCollector) RecordRebuild(Op, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount          atomic.Int64
	AddErrors         atomic.Int64
	RebuildCount      atomic.Int64
	RebuildErrors     atomic.Int64
	RebuildElements   atomic.Int64
	RebuildTotalNanos atomic.Int64
	LookupCount       atomic.Int64
	LookupErrors      atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(op Op, elements int, duration time.Duration, err error) {
	b.RebuildCount.Add(1)
	if err != nil {
		b.RebuildErrors.Add(1)
		return
	}
	b.RebuildElements.Add(int64(elements))
	b.RebuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, err error) {
	b.LookupCount.Add(1)
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddErrors:       b.AddErrors.Load(),
		RebuildCount:    b.RebuildCount.Load(),
		RebuildErrors:   b.RebuildErrors.Load(),
		RebuildElements: b.RebuildElements.Load(),
		RebuildAvgNanos: b.getAvgRebuildNanos(),
		LookupCount:     b.LookupCount.Load(),
		LookupErrors:    b.LookupErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRebuildNanos() int64 {
	ok := b.RebuildCount.Load() - b.RebuildErrors.Load()
	if ok == 0 {
		return 0
	}
	return b.RebuildTotalNanos.Load() / ok
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	AddCount        int64
	AddErrors       int64
	RebuildCount    int64
	RebuildErrors   int64
	RebuildElements int64
	RebuildAvgNanos int64
	LookupCount     int64
	LookupErrors    int64
}

// Package observe provides the service's OpenTelemetry metrics and the
// Prometheus exporter that serves them on /metrics.
//
// Tests should build [Metrics] with [NewMetrics] over an
// sdkmetric.ManualReader-backed provider to avoid cross-test pollution.
package observe

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/heartmarshall/myenglish-dictation"

// Cache lookup outcomes recorded by RecordCacheLookup.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds every instrument the service records. All fields are safe
// for concurrent use.
type Metrics struct {
	// Attempts counts scored submissions. Attributes: language, correct.
	Attempts metric.Int64Counter

	// AttemptScore records the overall score of each submission (0–100).
	AttemptScore metric.Float64Histogram

	// MasteryWriteFailures counts word-mastery rows that failed to persist.
	// Attribute: language.
	MasteryWriteFailures metric.Int64Counter

	// PhraseCacheLookups counts phrase cache lookups. Attribute: result.
	PhraseCacheLookups metric.Int64Counter

	// PhraseCacheEvictions counts entries dropped by the periodic sweep.
	PhraseCacheEvictions metric.Int64Counter

	// HTTPRequestDuration tracks request latency. Attributes: method, route, status.
	HTTPRequestDuration metric.Float64Histogram
}

var scoreBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Attempts, err = m.Int64Counter("dictation.attempts",
		metric.WithDescription("Scored dictation attempts by language and correctness."),
	); err != nil {
		return nil, err
	}
	if met.AttemptScore, err = m.Float64Histogram("dictation.attempt.score",
		metric.WithDescription("Overall score of dictation attempts."),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.MasteryWriteFailures, err = m.Int64Counter("dictation.mastery.write_failures",
		metric.WithDescription("Word mastery updates that failed to persist."),
	); err != nil {
		return nil, err
	}
	if met.PhraseCacheLookups, err = m.Int64Counter("dictation.phrase_cache.lookups",
		metric.WithDescription("Reference phrase cache lookups by result."),
	); err != nil {
		return nil, err
	}
	if met.PhraseCacheEvictions, err = m.Int64Counter("dictation.phrase_cache.evictions",
		metric.WithDescription("Expired reference phrases removed by the sweeper."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request latency by method, route and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// NewNoopMetrics returns instruments that record nothing. Used when metrics
// are disabled and in tests that do not inspect them.
func NewNoopMetrics() *Metrics {
	met, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		panic("observe: noop metrics: " + err.Error())
	}
	return met
}

// RecordAttempt records one scored submission.
func (m *Metrics) RecordAttempt(ctx context.Context, language string, correct bool, score float64) {
	attrs := metric.WithAttributes(
		attribute.String("language", language),
		attribute.String("correct", strconv.FormatBool(correct)),
	)
	m.Attempts.Add(ctx, 1, attrs)
	m.AttemptScore.Record(ctx, score, metric.WithAttributes(attribute.String("language", language)))
}

// RecordMasteryFailure records one word whose mastery row was not updated.
func (m *Metrics) RecordMasteryFailure(ctx context.Context, language string) {
	m.MasteryWriteFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("language", language)))
}

// RecordCacheLookup records a phrase cache lookup with result CacheHit,
// CacheMiss or CacheError.
func (m *Metrics) RecordCacheLookup(ctx context.Context, result string) {
	m.PhraseCacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordCacheEvictions records entries removed by one sweep.
func (m *Metrics) RecordCacheEvictions(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	m.PhraseCacheEvictions.Add(ctx, int64(n))
}

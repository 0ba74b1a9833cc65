package metrics

import (
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderParsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "parses_total",
		Help:      "Count of parse calls by outcome.",
	}, []string{"source", "status"})

	decoderParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "parse_duration_seconds",
		Help:      "Duration of parse calls.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms..262s
	}, []string{"source", "status"})

	decoderRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "records_total",
		Help:      "Count of fully decoded records.",
	}, []string{"source"})

	decoderChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "changes_total",
		Help:      "Count of decoded change events.",
	}, []string{"source"})

	decoderNullDeltasTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "null_deltas_total",
		Help:      "Count of change events whose amount and height deltas were both zero.",
	}, []string{"source"})

	decoderBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "bytes_total",
		Help:      "Count of bytes consumed by the decoder.",
	}, []string{"source"})
)

// Decoder records parse outcomes for one source of blk data.
type Decoder struct {
	source string
}

// NewDecoder creates a Decoder labelled with source.
func NewDecoder(source string) *Decoder {
	if source == "" {
		source = "unknown"
	}
	return &Decoder{source: source}
}

// ObserveParse records what a parse call decoded and how it ended. Failures
// are labelled by kind: truncated, bad_magic or io.
func (m Decoder) ObserveParse(stats blk.Stats, err error, started time.Time) {
	st := "success"
	if err != nil {
		st = blk.KindOf(err).String()
	}
	decoderParsesTotal.WithLabelValues(m.source, st).Inc()
	decoderParseDuration.WithLabelValues(m.source, st).Observe(time.Since(started).Seconds())
	decoderRecordsTotal.WithLabelValues(m.source).Add(float64(stats.Records))
	decoderChangesTotal.WithLabelValues(m.source).Add(float64(stats.Changes))
	decoderNullDeltasTotal.WithLabelValues(m.source).Add(float64(stats.NullDeltas))
	decoderBytesTotal.WithLabelValues(m.source).Add(float64(stats.Bytes))
}

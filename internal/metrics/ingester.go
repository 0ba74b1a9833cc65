package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "scans_total",
		Help:      "Count of directory scans for pending blk files.",
	}, []string{"status"})

	ingesterScanFiles = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "scan_pending_files",
		Help:      "Number of pending files found per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	ingesterFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "files_total",
		Help:      "Count of processed blk files.",
	}, []string{"status"})

	ingesterFileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "file_duration_seconds",
		Help:      "Duration of processing a single blk file.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingesterFileBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "file_bytes_total",
		Help:      "Count of bytes in processed blk files.",
	})
)

// Ingester tracks the blk ingester service.
type Ingester struct {
	*Decoder
}

// NewIngester creates an Ingester collector; its parse metrics use the
// "ingester" source label.
func NewIngester() *Ingester {
	return &Ingester{Decoder: NewDecoder("ingester")}
}

// ObserveScan records a scan for pending files.
func (m Ingester) ObserveScan(err error, files int) {
	ingesterScansTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		ingesterScanFiles.Observe(float64(files))
	}
}

// ObserveFile records processing of one file. Files that failed to decode
// count as "invalid", infrastructure failures as "error".
func (m Ingester) ObserveFile(err error, invalid bool, size uint64, started time.Time) {
	st := status(err)
	if err == nil && invalid {
		st = "invalid"
	}
	ingesterFilesTotal.WithLabelValues(st).Inc()
	ingesterFileDuration.WithLabelValues(st).Observe(time.Since(started).Seconds())
	if err == nil {
		ingesterFileBytesTotal.Add(float64(size))
	}
}

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer captures telemetry for gateway operations.
type Observer interface {
	// RecordUpload tracks a single object upload attempt.
	RecordUpload(duration time.Duration, sizeBytes uint64, err error)
	// RecordProbe tracks a bucket reachability probe.
	RecordProbe(duration time.Duration, err error)
}

// PrometheusObserver exports gateway metrics to Prometheus.
type PrometheusObserver struct {
	operationDuration *prometheus.HistogramVec
	operationErrors   *prometheus.CounterVec
	uploadedBytes     prometheus.Counter
}

// NewPrometheusObserver registers upload and probe metrics on the given
// registerer. Re-registering on the same registerer is tolerated so that
// repeated startups in tests do not fail.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "upload_gateway"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	observer := &PrometheusObserver{
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency for storage operations issued by the gateway.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		operationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Count of failed storage operations.",
		}, []string{"operation"}),
		uploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Cumulative payload size successfully uploaded to object storage.",
		}),
	}

	collectors := []prometheus.Collector{observer.operationDuration, observer.operationErrors, observer.uploadedBytes}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return nil, fmt.Errorf("register gateway metric: %w", err)
		}
	}

	return observer, nil
}

// RecordUpload tracks upload duration, size, and failures.
func (o *PrometheusObserver) RecordUpload(duration time.Duration, sizeBytes uint64, err error) {
	if o == nil {
		return
	}
	o.operationDuration.WithLabelValues("upload").Observe(duration.Seconds())
	if err != nil {
		o.operationErrors.WithLabelValues("upload").Inc()
		return
	}
	o.uploadedBytes.Add(float64(sizeBytes))
}

// RecordProbe tracks bucket probe duration and failures.
func (o *PrometheusObserver) RecordProbe(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.operationDuration.WithLabelValues("probe").Observe(duration.Seconds())
	if err != nil {
		o.operationErrors.WithLabelValues("probe").Inc()
	}
}

// Nop returns an Observer that discards every record. Handy for tests and
// for callers that do not wire a registry.
func Nop() Observer {
	return nopObserver{}
}

type nopObserver struct{}

func (nopObserver) RecordUpload(time.Duration, uint64, error) {}

func (nopObserver) RecordProbe(time.Duration, error) {}

package classifier

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"modelprobe/pkg/types"
)

var (
	classificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelprobe",
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Total classification calls by family, selected kind, and outcome",
		},
		[]string{"family", "kind", "outcome"},
	)

	classificationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "modelprobe",
			Subsystem: "classifier",
			Name:      "classification_duration_seconds",
			Help:      "Duration of classification calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family"},
	)
)

func init() {
	prometheus.MustRegister(classificationsTotal, classificationDuration)
}

func observeClassification(family string, res types.DetectionResult, dur time.Duration) {
	outcome := "ok"
	if !res.OK {
		outcome = res.ErrorCode
		if outcome == "" {
			outcome = "failed"
		}
	}
	classificationsTotal.WithLabelValues(family, res.Kind, outcome).Inc()
	classificationDuration.WithLabelValues(family).Observe(dur.Seconds())
}

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	outcomeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusshare_moderation_outcomes_total",
			Help: "Total moderation pipeline outcomes by result",
		},
		[]string{"result"}, // approved, rejected, error
	)

	modelCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campusshare_model_call_duration_seconds",
			Help:    "Duration of model endpoint calls by pipeline stage",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"}, // normalize, screen, recommend
	)

	initOnce    sync.Once
	initialized bool
)

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(outcomeCounter, modelCallDuration)
		initialized = true
	})
}

// RecordOutcome counts a terminal pipeline result.
func RecordOutcome(result string) {
	if !initialized {
		return
	}
	outcomeCounter.WithLabelValues(result).Inc()
}

// ObserveModelCall records the duration of one stage's model call.
func ObserveModelCall(stage string, d time.Duration) {
	if !initialized {
		return
	}
	modelCallDuration.WithLabelValues(stage).Observe(d.Seconds())
}

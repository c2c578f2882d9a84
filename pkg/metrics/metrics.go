package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgErrors "memory-mob/pkg/errors"
)

const namespace = "memory_mob"

// Metrics exposes Prometheus collectors for the voice pipeline and reminder writes.
type Metrics struct {
	stageDuration    *prometheus.HistogramVec
	stageFailures    *prometheus.CounterVec
	remindersCreated *prometheus.CounterVec
	gatherer         prometheus.Gatherer
}

// MustNewMetrics registers the collectors with reg (the default registry when nil).
// Collectors that are already registered are reused.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each voice pipeline stage.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"stage", "status"},
	)
	stageFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voice",
			Name:      "stage_failures_total",
			Help:      "Voice pipeline stage failures by reason.",
		},
		[]string{"stage", "reason"},
	)
	remindersCreated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminders",
			Name:      "created_total",
			Help:      "Reminders created by intake channel.",
		},
		[]string{"channel"},
	)

	stageDuration = register(reg, stageDuration)
	stageFailures = register(reg, stageFailures)
	remindersCreated = register(reg, remindersCreated)

	gatherer, ok := reg.(prometheus.Gatherer)
	if !ok {
		gatherer = prometheus.DefaultGatherer
	}

	return &Metrics{
		stageDuration:    stageDuration,
		stageFailures:    stageFailures,
		remindersCreated: remindersCreated,
		gatherer:         gatherer,
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveStage records one stage execution. A nil receiver is a no-op.
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		m.stageFailures.WithLabelValues(stage, Reason(err)).Inc()
	}
	m.stageDuration.WithLabelValues(stage, status).Observe(elapsed.Seconds())
}

// IncRemindersCreated counts a reminder created through channel.
func (m *Metrics) IncRemindersCreated(channel string) {
	if m == nil {
		return
	}
	m.remindersCreated.WithLabelValues(channel).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Reason maps an error onto a low-cardinality label value.
func Reason(err error) string {
	var pe *pkgErrors.ProviderError
	switch {
	case errors.Is(err, pkgErrors.ErrCredentialMissing):
		return "credential_missing"
	case errors.Is(err, pkgErrors.ErrCredentialRejected):
		return "credential_rejected"
	case errors.Is(err, pkgErrors.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, pkgErrors.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, pkgErrors.ErrPermissionDenied):
		return "permission_denied"
	case errors.As(err, &pe):
		if pe.StatusCode == http.StatusTooManyRequests {
			return "rate_limited"
		}
		return "provider_error"
	default:
		return "other"
	}
}

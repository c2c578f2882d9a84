package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	pkgErrors "memory-mob/pkg/errors"
	"memory-mob/pkg/metrics"
)

func TestObserveStage(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)

	m.ObserveStage("transcribe", time.Second, nil)
	m.ObserveStage("parse", time.Second, pkgErrors.ErrMalformedResponse)
	m.IncRemindersCreated("http")

	count, err := testutil.GatherAndCount(reg, "memory_mob_voice_stage_failures_total")
	if err != nil || count != 1 {
		t.Fatalf("failures series = %d, %v", count, err)
	}
	count, err = testutil.GatherAndCount(reg, "memory_mob_voice_stage_duration_seconds")
	if err != nil || count != 2 {
		t.Fatalf("duration series = %d, %v", count, err)
	}

	// Registering twice on the same registry reuses the collectors.
	again := metrics.MustNewMetrics(reg)
	again.IncRemindersCreated("http")
	count, err = testutil.GatherAndCount(reg, "memory_mob_reminders_created_total")
	if err != nil || count != 1 {
		t.Fatalf("created series = %d, %v", count, err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveStage("transcribe", time.Second, errors.New("x"))
	m.IncRemindersCreated("cli")
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &pkgErrors.CredentialError{Slot: "llm", Err: pkgErrors.ErrCredentialMissing}, want: "credential_missing"},
		{err: &pkgErrors.ProviderError{StatusCode: http.StatusUnauthorized}, want: "credential_rejected"},
		{err: &pkgErrors.ProviderError{StatusCode: http.StatusTooManyRequests}, want: "rate_limited"},
		{err: &pkgErrors.ProviderError{StatusCode: http.StatusBadGateway}, want: "provider_error"},
		{err: pkgErrors.ErrEmptyResponse, want: "empty_response"},
		{err: errors.New("boom"), want: "other"},
	}
	for _, tt := range tests {
		if got := metrics.Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)
	m.IncRemindersCreated("telegram")

	r := gin.New()
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `memory_mob_reminders_created_total{channel="telegram"} 1`) {
		t.Errorf("unexpected metrics output: %d %s", w.Code, w.Body.String())
	}
}

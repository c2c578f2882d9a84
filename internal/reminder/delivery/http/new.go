package http

import (
	"memory-mob/internal/reminder"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/log"
	"memory-mob/pkg/metrics"
)

type handler struct {
	l       log.Logger
	uc      reminder.UseCase
	zone    *datemath.Zone
	locale  string
	metrics *metrics.Metrics
}

// New creates a new HTTP handler for reminders. Display strings are rendered in
// locale; m may be nil.
func New(l log.Logger, uc reminder.UseCase, zone *datemath.Zone, locale string, m *metrics.Metrics) *handler {
	if locale == "" {
		locale = datemath.DefaultLocale
	}
	return &handler{
		l:       l,
		uc:      uc,
		zone:    zone,
		locale:  locale,
		metrics: m,
	}
}

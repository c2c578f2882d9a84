package http

import (
	"memory-mob/internal/voice"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/log"
)

type handler struct {
	l    log.Logger
	uc   voice.UseCase
	zone *datemath.Zone
}

// New creates a new HTTP handler for voice drafts.
func New(l log.Logger, uc voice.UseCase, zone *datemath.Zone) *handler {
	return &handler{l: l, uc: uc, zone: zone}
}

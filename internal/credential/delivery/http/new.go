package http

import (
	"memory-mob/internal/credential"
	"memory-mob/pkg/log"
)

type handler struct {
	l  log.Logger
	uc credential.UseCase
}

// New creates a new HTTP handler for credential management.
func New(l log.Logger, uc credential.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

package http

import (
	"errors"
	"net/http"

	"memory-mob/internal/credential"
	pkgErrors "memory-mob/pkg/errors"
)

// mapError translates credential errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrInvalidSlot):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown credential slot")
	case errors.Is(err, credential.ErrEmptyKey):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "key is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

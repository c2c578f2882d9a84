package http

import (
	"errors"
	"net/http"

	"memory-mob/internal/reminder"
	pkgErrors "memory-mob/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var ve *pkgErrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, ve.Error()).
			WithData(map[string]interface{}{"field": ve.Field})
	case errors.Is(err, reminder.ErrInvalidFilter), errors.Is(err, reminder.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, reminder.ErrNotFound):
		return pkgErrors.ErrNotFound
	case errors.Is(err, reminder.ErrArchived), errors.Is(err, reminder.ErrNotArchived):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

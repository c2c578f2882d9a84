package http

import (
	"errors"
	"net/http"

	"memory-mob/internal/voice"
	pkgErrors "memory-mob/pkg/errors"
)

var (
	errMissingAudio = pkgErrors.NewHTTPError(http.StatusBadRequest, "audio file is required")
	errAudioTooBig  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "audio file is too large")
)

// mapError translates pipeline errors into HTTP errors from pkg/errors.
// Credential failures answer 428 and name the slot to fill.
func (h *handler) mapError(err error) error {
	if errors.Is(err, pkgErrors.ErrCredentialMissing) || errors.Is(err, pkgErrors.ErrCredentialRejected) {
		slot, _ := pkgErrors.SlotOf(err)
		return pkgErrors.NewHTTPError(http.StatusPreconditionRequired, err.Error()).
			WithData(map[string]interface{}{"credential_required": slot})
	}

	var pe *pkgErrors.ProviderError
	switch {
	case errors.As(err, &pe):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, pe.Error())
	case errors.Is(err, pkgErrors.ErrEmptyResponse), errors.Is(err, pkgErrors.ErrMalformedResponse):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, pkgErrors.ErrValidation),
		errors.Is(err, voice.ErrInvalidMode),
		errors.Is(err, voice.ErrEmptyClip):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

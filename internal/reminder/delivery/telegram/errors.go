package telegram

import (
	"errors"
	"strings"

	"memory-mob/internal/model"
	"memory-mob/internal/voice"
	pkgErrors "memory-mob/pkg/errors"
	pkgTelegram "memory-mob/pkg/telegram"
)

// errorMessage returns a user-facing (Finnish) error string for the given error.
func errorMessage(err error) string {
	if slot, ok := pkgErrors.SlotOf(err); ok {
		name := "puheentunnistuksen"
		if model.CredentialSlot(slot) == model.SlotLLM {
			name = "kielimallin"
		}
		if errors.Is(err, pkgErrors.ErrCredentialRejected) {
			return "⚠️ Palvelu hylkäsi " + name + " API-avaimen. Aseta uusi avain ja yritä uudelleen."
		}
		return "⚠️ " + strings.ToUpper(name[:1]) + name[1:] + " API-avain puuttuu. Aseta avain ja yritä uudelleen."
	}

	var ve *pkgErrors.ValidationError
	switch {
	case errors.As(err, &ve) && ve.Field == "reminder_time":
		return "⚠️ Muistutuksen ajan pitää olla tulevaisuudessa."
	case errors.As(err, &ve) && ve.Field == "message":
		return "⚠️ Muistutuksessa pitää olla viesti."
	case errors.Is(err, pkgErrors.ErrEmptyResponse), errors.Is(err, voice.ErrEmptyClip):
		return "⚠️ En saanut viestistä selvää. Yritä uudelleen."
	case errors.Is(err, pkgTelegram.ErrFileTooBig):
		return "⚠️ Ääniviesti on liian pitkä."
	default:
		return "Muistutuksen tallentaminen epäonnistui. Yritä uudelleen."
	}
}

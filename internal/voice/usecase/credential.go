package usecase

import (
	"context"
	"errors"

	"memory-mob/internal/model"
	pkgErrors "memory-mob/pkg/errors"
)

// apiKey resolves the key for slot without touching the network.
func (uc *implUseCase) apiKey(ctx context.Context, slot model.CredentialSlot) (string, error) {
	key, err := uc.creds.Get(ctx, slot)
	if err != nil {
		if _, ok := pkgErrors.SlotOf(err); ok {
			return "", err
		}
		uc.l.Errorf(ctx, "voice.usecase.apiKey: %v", err)
		return "", err
	}
	return key, nil
}

// credentialFailure tags a provider error with slot. A rejected key is cleared
// from the store so the next attempt prompts for a new one.
func (uc *implUseCase) credentialFailure(ctx context.Context, slot model.CredentialSlot, err error) error {
	if !errors.Is(err, pkgErrors.ErrCredentialRejected) {
		return err
	}
	uc.l.Warnf(ctx, "%s credential rejected, clearing stored key", slot)
	if cerr := uc.creds.Clear(ctx, slot); cerr != nil {
		uc.l.Errorf(ctx, "voice.usecase.credentialFailure Clear: %v", cerr)
	}
	return &pkgErrors.CredentialError{Slot: string(slot), Err: err}
}

package usecase

import (
	"context"
	"strings"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
	pkgErrors "memory-mob/pkg/errors"
)

// Get returns the key for slot. A missing key is a *errors.CredentialError wrapping
// errors.ErrCredentialMissing.
func (uc *implUseCase) Get(ctx context.Context, slot model.CredentialSlot) (string, error) {
	if !slot.IsValid() {
		return "", credential.ErrInvalidSlot
	}

	key, _, err := uc.lookup(ctx, slot)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", &pkgErrors.CredentialError{Slot: string(slot), Err: pkgErrors.ErrCredentialMissing}
	}
	return key, nil
}

// Set stores key for slot, replacing any previous value.
func (uc *implUseCase) Set(ctx context.Context, slot model.CredentialSlot, key string) error {
	if !slot.IsValid() {
		return credential.ErrInvalidSlot
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return credential.ErrEmptyKey
	}

	if err := uc.repo.Save(ctx, slot, key); err != nil {
		uc.l.Errorf(ctx, "uc.Set Save: %v", err)
		return err
	}
	uc.l.Infof(ctx, "credential %s updated", slot)
	return nil
}

// Clear removes the stored key for slot. The environment fallback is untouched.
func (uc *implUseCase) Clear(ctx context.Context, slot model.CredentialSlot) error {
	if !slot.IsValid() {
		return credential.ErrInvalidSlot
	}
	if err := uc.repo.Delete(ctx, slot); err != nil {
		uc.l.Errorf(ctx, "uc.Clear Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "credential %s cleared", slot)
	return nil
}

// Status reports every slot without revealing keys.
func (uc *implUseCase) Status(ctx context.Context) ([]credential.SlotStatus, error) {
	out := make([]credential.SlotStatus, 0, len(model.CredentialSlots))
	for _, slot := range model.CredentialSlots {
		key, source, err := uc.lookup(ctx, slot)
		if err != nil {
			return nil, err
		}
		out = append(out, credential.SlotStatus{Slot: slot, Configured: key != "", Source: source})
	}
	return out, nil
}

func (uc *implUseCase) lookup(ctx context.Context, slot model.CredentialSlot) (string, credential.Source, error) {
	stored, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.lookup Load: %v", err)
		return "", credential.SourceNone, err
	}
	if key := strings.TrimSpace(stored[slot]); key != "" {
		return key, credential.SourceStored, nil
	}
	if name, ok := credential.EnvVars[slot]; ok {
		if key := strings.TrimSpace(uc.getenv(name)); key != "" {
			return key, credential.SourceEnv, nil
		}
	}
	return "", credential.SourceNone, nil
}

package repository

import (
	"context"

	"memory-mob/internal/model"
)

// Repository persists provider keys.
type Repository interface {
	Load(ctx context.Context) (map[model.CredentialSlot]string, error)
	Save(ctx context.Context, slot model.CredentialSlot, key string) error
	Delete(ctx context.Context, slot model.CredentialSlot) error
}

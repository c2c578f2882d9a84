package credential

import (
	"context"

	"memory-mob/internal/model"
)

// UseCase owns the provider keys. Get never touches the network.
type UseCase interface {
	Get(ctx context.Context, slot model.CredentialSlot) (string, error)
	Set(ctx context.Context, slot model.CredentialSlot, key string) error
	Clear(ctx context.Context, slot model.CredentialSlot) error
	Status(ctx context.Context) ([]SlotStatus, error)
}

package reminder

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	ListArchived(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

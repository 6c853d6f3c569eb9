package careneed

import (
	"context"

	"care-coordination/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, sc model.Scope, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailItemOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
}

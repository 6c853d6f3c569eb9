package repository

import (
	"context"

	"care-coordination/internal/model"
)

// Repository is the composed interface for the care-need data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for CareNeedItem.
// GetOneItem returns the zero value (ID == "") when nothing matches;
// not-found is not an error at this layer.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.CareNeedItem, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.CareNeedItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.CareNeedItem, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.CareNeedItem, error)
}

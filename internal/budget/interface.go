package budget

import (
	"context"

	"care-coordination/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Report computes (or serves from cache) the annual budget rollup
	// for one person.
	Report(ctx context.Context, sc model.Scope, input ReportInput) (ReportOutput, error)
}

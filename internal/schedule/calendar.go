package schedule

import (
	"context"

	"care-coordination/internal/model"
)

// CalendarExporter mirrors timed tasks to an external calendar. Export
// is best-effort: the materializer logs failures and moves on, so an
// unreachable calendar never blocks task generation.
type CalendarExporter interface {
	ExportTask(ctx context.Context, task model.CareTask) error
}

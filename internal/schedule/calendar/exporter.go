package calendar

import (
	"context"
	"fmt"
	"time"

	"care-coordination/internal/model"
	"care-coordination/pkg/gcalendar"
	"care-coordination/pkg/log"
)

// EventCreator is the slice of the Google Calendar client the exporter needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Exporter mirrors timed care tasks into a Google Calendar.
type Exporter struct {
	l          log.Logger
	client     EventCreator
	calendarID string
}

func NewExporter(l log.Logger, client EventCreator, calendarID string) *Exporter {
	return &Exporter{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}

// defaultDuration is used when a task carries a start instant but no end.
const defaultDuration = 30 * time.Minute

func (e *Exporter) ExportTask(ctx context.Context, task model.CareTask) error {
	start, end := eventBounds(task)

	event, err := e.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  e.calendarID,
		Summary:     task.Title,
		Description: fmt.Sprintf("Care task for person %s, due %s", task.PersonID, task.DueDate.Format("2006-01-02")),
		StartTime:   start,
		EndTime:     end,
		Timezone:    "UTC",
	})
	if err != nil {
		return fmt.Errorf("failed to export task %s: %w", task.ID, err)
	}

	e.l.Infof(ctx, "schedule.calendar.Exporter.ExportTask: task %s exported as event %s (%s)", task.ID, event.ID, event.HtmlLink)
	return nil
}

// eventBounds derives the event window. Timed tasks carry their own
// instants; anything else lands as a morning slot on the due date.
func eventBounds(task model.CareTask) (time.Time, time.Time) {
	if task.StartAt != nil {
		start := *task.StartAt
		if task.EndAt != nil {
			return start, *task.EndAt
		}
		return start, start.Add(defaultDuration)
	}

	start := time.Date(task.DueDate.Year(), task.DueDate.Month(), task.DueDate.Day(), 9, 0, 0, 0, time.UTC)
	return start, start.Add(defaultDuration)
}

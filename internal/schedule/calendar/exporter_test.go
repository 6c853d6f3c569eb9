package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule/calendar"
	"care-coordination/pkg/gcalendar"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type mockEventCreator struct {
	lastReq gcalendar.CreateEventRequest
	err     error
}

func (m *mockEventCreator) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "event-1", HtmlLink: "http://cal.link"}, nil
}

func TestExportTask(t *testing.T) {
	ctx := context.Background()

	t.Run("timed task uses its own instants", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
		end := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

		creator := &mockEventCreator{}
		exp := calendar.NewExporter(mockLogger{}, creator, "care-cal")

		err := exp.ExportTask(ctx, model.CareTask{
			ID:       "task-1",
			PersonID: "person-1",
			Title:    "Physio appointment",
			DueDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			StartAt:  &start,
			EndAt:    &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !creator.lastReq.StartTime.Equal(start) || !creator.lastReq.EndTime.Equal(end) {
			t.Errorf("unexpected event window: %v - %v", creator.lastReq.StartTime, creator.lastReq.EndTime)
		}
		if creator.lastReq.CalendarID != "care-cal" {
			t.Errorf("unexpected calendar id: %s", creator.lastReq.CalendarID)
		}
		if creator.lastReq.Summary != "Physio appointment" {
			t.Errorf("unexpected summary: %s", creator.lastReq.Summary)
		}
	})

	t.Run("start without end gets default duration", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

		creator := &mockEventCreator{}
		exp := calendar.NewExporter(mockLogger{}, creator, "")

		err := exp.ExportTask(ctx, model.CareTask{
			ID:      "task-2",
			Title:   "Check in",
			DueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			StartAt: &start,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := start.Add(30 * time.Minute)
		if !creator.lastReq.EndTime.Equal(want) {
			t.Errorf("expected end %v, got %v", want, creator.lastReq.EndTime)
		}
	})

	t.Run("all-day task lands as morning slot", func(t *testing.T) {
		creator := &mockEventCreator{}
		exp := calendar.NewExporter(mockLogger{}, creator, "")

		err := exp.ExportTask(ctx, model.CareTask{
			ID:      "task-3",
			Title:   "Change bandage",
			DueDate: time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)
		if !creator.lastReq.StartTime.Equal(want) {
			t.Errorf("expected start %v, got %v", want, creator.lastReq.StartTime)
		}
	})

	t.Run("creation failure surfaces", func(t *testing.T) {
		creator := &mockEventCreator{err: errors.New("calendar down")}
		exp := calendar.NewExporter(mockLogger{}, creator, "")

		err := exp.ExportTask(ctx, model.CareTask{ID: "task-4", DueDate: time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

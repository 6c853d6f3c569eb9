package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	repo "care-coordination/internal/schedule/repository"
	"care-coordination/internal/schedule/usecase"
)

func TestComplete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{OrganizationID: "org-1", UserID: "user-1", Role: model.RoleAdmin}

	scheduledTask := func() model.CareTask {
		return model.CareTask{
			ID:             "task-1",
			CareNeedItemID: "item-1",
			OrganizationID: "org-1",
			PersonID:       "person-1",
			Status:         model.TaskStatusScheduled,
			DueDate:        date(2024, 6, 8),
		}
	}

	t.Run("task not found", func(t *testing.T) {
		taskRepo := &mockTaskRepo{}
		uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

		_, err := uc.Complete(ctx, sc, schedule.CompleteInput{TaskID: "missing"})
		if err != schedule.ErrTaskNotFound {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		task := scheduledTask()
		task.Status = model.TaskStatusCompleted
		taskRepo := &mockTaskRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (model.CareTask, error) {
				return task, nil
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

		_, err := uc.Complete(ctx, sc, schedule.CompleteInput{TaskID: "task-1"})
		if err != schedule.ErrTaskNotCompletable {
			t.Fatalf("expected ErrTaskNotCompletable, got %v", err)
		}
	})

	t.Run("cancelled is not completable", func(t *testing.T) {
		task := scheduledTask()
		task.Status = model.TaskStatusCancelled
		taskRepo := &mockTaskRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (model.CareTask, error) {
				return task, nil
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

		_, err := uc.Complete(ctx, sc, schedule.CompleteInput{TaskID: "task-1"})
		if err != schedule.ErrTaskNotCompletable {
			t.Fatalf("expected ErrTaskNotCompletable, got %v", err)
		}
	})

	t.Run("missed task completes with cost override", func(t *testing.T) {
		task := scheduledTask()
		task.Status = model.TaskStatusMissed
		cost := decimal.NewFromInt(42)

		var got repo.CompleteTaskOptions
		taskRepo := &mockTaskRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (model.CareTask, error) {
				return task, nil
			},
			completeFunc: func(opt repo.CompleteTaskOptions) (model.CareTask, error) {
				got = opt
				done := task
				done.Status = model.TaskStatusCompleted
				done.CompletedBy = opt.CompletedBy
				done.Cost = opt.Cost
				return done, nil
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

		output, err := uc.Complete(ctx, sc, schedule.CompleteInput{TaskID: "task-1", Cost: &cost})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Task.Status != model.TaskStatusCompleted {
			t.Errorf("status: got %s", output.Task.Status)
		}
		// CompletedBy defaults to the caller when not provided.
		if got.CompletedBy != "user-1" {
			t.Errorf("completed by: got %q", got.CompletedBy)
		}
		if got.Cost == nil || !got.Cost.Equal(cost) {
			t.Errorf("cost: got %v", got.Cost)
		}
	})

	t.Run("staff visibility is passed to the store", func(t *testing.T) {
		var got repo.GetOneTaskOptions
		taskRepo := &mockTaskRepo{
			getOneFunc: func(opt repo.GetOneTaskOptions) (model.CareTask, error) {
				got = opt
				return model.CareTask{}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

		staff := model.Scope{OrganizationID: "org-1", Role: model.RoleStaff, PersonIDs: []string{"person-2"}}
		_, err := uc.Complete(ctx, staff, schedule.CompleteInput{TaskID: "task-1"})
		if err != schedule.ErrTaskNotFound {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
		if len(got.PersonIDs) != 1 || got.PersonIDs[0] != "person-2" {
			t.Errorf("person filter: got %v", got.PersonIDs)
		}
	})
}

func TestSweepOverdue(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{OrganizationID: "org-1", Role: model.RoleAdmin}

	var got repo.MarkOverdueOptions
	taskRepo := &mockTaskRepo{
		markOverdueFunc: func(opt repo.MarkOverdueOptions) (int, error) {
			got = opt
			return 3, nil
		},
	}
	uc := usecase.New(&mockLogger{}, taskRepo, &mockItemRepo{}, nil, testCfg, fixedNow)

	output, err := uc.SweepOverdue(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Updated != 3 {
		t.Errorf("updated: got %d, want 3", output.Updated)
	}
	// Cutoff is today's date; tasks due today are not overdue yet.
	if !got.Before.Equal(date(2024, 6, 15)) {
		t.Errorf("cutoff: got %v", got.Before)
	}
	if got.OrganizationID != "org-1" {
		t.Errorf("organization: got %q", got.OrganizationID)
	}
}

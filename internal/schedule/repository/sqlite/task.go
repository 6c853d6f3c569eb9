package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"care-coordination/internal/model"
	repo "care-coordination/internal/schedule/repository"
)

const dateLayout = "2006-01-02"

const taskColumns = `id, care_need_item_id, organization_id, person_id, title,
	due_date, status, schedule_type, start_at, end_at,
	cost, assigned_to, completed_by, created_at, updated_at`

// UpsertTask relies on the UNIQUE (care_need_item_id, due_date) index:
// an insert that conflicts is a no-op, after which only the scheduling
// fields are refreshed. Status, cost and completion data are never
// touched here, so completed or skipped tasks survive re-generation.
func (r *implRepository) UpsertTask(ctx context.Context, opt repo.UpsertTaskOptions) (model.CareTask, bool, error) {
	now := time.Now().UTC()
	due := opt.DueDate.UTC().Format(dateLayout)

	const insert = `
		INSERT INTO care_tasks (
			id, care_need_item_id, organization_id, person_id, title,
			due_date, status, schedule_type, start_at, end_at,
			cost, assigned_to, completed_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, 'scheduled', ?, ?, ?, NULL, ?, '', ?, ?)
		ON CONFLICT (care_need_item_id, due_date) DO NOTHING`

	res, err := r.db.ExecContext(ctx, insert,
		uuid.NewString(), opt.CareNeedItemID, opt.OrganizationID, opt.PersonID, opt.Title,
		due, string(opt.ScheduleType), timePtr(opt.StartAt), timePtr(opt.EndAt),
		opt.AssignedTo, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("UpsertTask"), err)
		return model.CareTask{}, false, repo.ErrFailedToUpsert
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpsertTask"), err)
		return model.CareTask{}, false, repo.ErrFailedToUpsert
	}
	inserted := n > 0

	if !inserted {
		const update = `
			UPDATE care_tasks SET
				title = ?, schedule_type = ?, start_at = ?, end_at = ?, updated_at = ?
			WHERE care_need_item_id = ? AND due_date = ?`
		if _, err := r.db.ExecContext(ctx, update,
			opt.Title, string(opt.ScheduleType), timePtr(opt.StartAt), timePtr(opt.EndAt), now,
			opt.CareNeedItemID, due,
		); err != nil {
			r.l.Errorf(ctx, "%s update: %v", r.dsn("UpsertTask"), err)
			return model.CareTask{}, false, repo.ErrFailedToUpsert
		}
	}

	query := fmt.Sprintf("SELECT %s FROM care_tasks WHERE care_need_item_id = ? AND due_date = ?", taskColumns)
	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.CareNeedItemID, due))
	if err != nil {
		r.l.Errorf(ctx, "%s fetch: %v", r.dsn("UpsertTask"), err)
		return model.CareTask{}, false, repo.ErrFailedToUpsert
	}
	return task, inserted, nil
}

// GetOneTask retrieves a single task by the provided filters (AND).
// Returns the zero-value task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.CareTask, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.OrganizationID != "" {
		conds = append(conds, "organization_id = ?")
		args = append(args, opt.OrganizationID)
	}
	if len(opt.PersonIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(opt.PersonIDs)), ",")
		conds = append(conds, fmt.Sprintf("person_id IN (%s)", placeholders))
		for _, id := range opt.PersonIDs {
			args = append(args, id)
		}
	}
	if len(conds) == 0 {
		return model.CareTask{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM care_tasks WHERE %s LIMIT 1",
		taskColumns, strings.Join(conds, " AND "))

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.CareTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.CareTask{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns matching tasks ordered by due date and the total
// count. Limit <= 0 disables pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.CareTask, int, error) {
	conds, args := buildTaskConds(opt)
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM care_tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM care_tasks WHERE %s ORDER BY due_date, created_at", taskColumns, where)
	pageArgs := args
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		pageArgs = append(append([]any{}, args...), opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.CareTask
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

func (r *implRepository) LatestDueDate(ctx context.Context, itemID string) (time.Time, bool, error) {
	var due sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT MAX(due_date) FROM care_tasks WHERE care_need_item_id = ?", itemID,
	).Scan(&due)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LatestDueDate"), err)
		return time.Time{}, false, repo.ErrFailedToGet
	}
	if !due.Valid || due.String == "" {
		return time.Time{}, false, nil
	}
	d, err := time.Parse(dateLayout, due.String)
	if err != nil {
		r.l.Errorf(ctx, "%s bad due_date %q: %v", r.dsn("LatestDueDate"), due.String, err)
		return time.Time{}, false, repo.ErrFailedToGet
	}
	return d, true, nil
}

// CompleteTask transitions a scheduled or missed task to completed.
// Returns the zero value when no row is in a completable state.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.CareTask, error) {
	const query = `
		UPDATE care_tasks SET
			status = 'completed', completed_by = ?, cost = COALESCE(?, cost), updated_at = ?
		WHERE id = ? AND organization_id = ? AND status IN ('scheduled', 'missed')`

	var cost any
	if opt.Cost != nil {
		cost = opt.Cost.String()
	}
	res, err := r.db.ExecContext(ctx, query,
		opt.CompletedBy, cost, time.Now().UTC(), opt.ID, opt.OrganizationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.CareTask{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.CareTask{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// MarkOverdue relies on ISO date strings comparing lexicographically.
func (r *implRepository) MarkOverdue(ctx context.Context, opt repo.MarkOverdueOptions) (int, error) {
	const query = `
		UPDATE care_tasks SET status = 'missed', updated_at = ?
		WHERE organization_id = ? AND status = 'scheduled' AND due_date < ?`

	res, err := r.db.ExecContext(ctx, query,
		time.Now().UTC(), opt.OrganizationID, opt.Before.UTC().Format(dateLayout))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkOverdue"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("MarkOverdue"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return int(n), nil
}

// --- helpers ---

func buildTaskConds(opt repo.ListTasksOptions) ([]string, []any) {
	conds := []string{"1=1"}
	var args []any
	if opt.OrganizationID != "" {
		conds = append(conds, "organization_id = ?")
		args = append(args, opt.OrganizationID)
	}
	if opt.CareNeedItemID != "" {
		conds = append(conds, "care_need_item_id = ?")
		args = append(args, opt.CareNeedItemID)
	}
	if opt.PersonID != "" {
		conds = append(conds, "person_id = ?")
		args = append(args, opt.PersonID)
	}
	if len(opt.PersonIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(opt.PersonIDs)), ",")
		conds = append(conds, fmt.Sprintf("person_id IN (%s)", placeholders))
		for _, id := range opt.PersonIDs {
			args = append(args, id)
		}
	}
	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.From != nil {
		conds = append(conds, "due_date >= ?")
		args = append(args, opt.From.UTC().Format(dateLayout))
	}
	if opt.To != nil {
		conds = append(conds, "due_date <= ?")
		args = append(args, opt.To.UTC().Format(dateLayout))
	}
	return conds, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.CareTask, error) {
	var (
		task             model.CareTask
		due              string
		status, schedule string
		startAt, endAt   sql.NullTime
		cost             sql.NullString
	)
	err := row.Scan(
		&task.ID, &task.CareNeedItemID, &task.OrganizationID, &task.PersonID, &task.Title,
		&due, &status, &schedule, &startAt, &endAt,
		&cost, &task.AssignedTo, &task.CompletedBy, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.CareTask{}, err
	}

	task.Status = model.TaskStatus(status)
	task.ScheduleType = model.ScheduleType(schedule)

	if task.DueDate, err = time.Parse(dateLayout, due); err != nil {
		return model.CareTask{}, fmt.Errorf("bad due_date %q: %w", due, err)
	}
	if startAt.Valid {
		t := startAt.Time.UTC()
		task.StartAt = &t
	}
	if endAt.Valid {
		t := endAt.Time.UTC()
		task.EndAt = &t
	}
	if cost.Valid && cost.String != "" {
		c, parseErr := decimal.NewFromString(cost.String)
		if parseErr != nil {
			return model.CareTask{}, fmt.Errorf("bad cost %q: %w", cost.String, parseErr)
		}
		task.Cost = &c
	}
	return task, nil
}

func timePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

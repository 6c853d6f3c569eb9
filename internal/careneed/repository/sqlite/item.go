package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	repo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
)

const dateLayout = "2006-01-02"

const itemColumns = `id, organization_id, person_id, name, category, status,
	interval_type, interval_value, start_date, end_date, occurrence_count,
	schedule_type, time_start, time_end,
	purchase_cost, occurrence_cost, budget_cost, created_at, updated_at`

// CreateItem inserts a new item plus its per-year budget rows in one
// transaction and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.CareNeedItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToInsert
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	now := time.Now().UTC()

	const query = `
		INSERT INTO care_need_items (
			id, organization_id, person_id, name, category, status,
			interval_type, interval_value, start_date, end_date, occurrence_count,
			schedule_type, time_start, time_end,
			purchase_cost, occurrence_cost, budget_cost, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, 'active', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	timeStart, timeEnd := windowStrings(opt.TimeWindow)
	_, err = tx.ExecContext(ctx, query,
		id, opt.OrganizationID, opt.PersonID, opt.Name, opt.Category,
		string(opt.Rule.IntervalType), opt.Rule.IntervalValue,
		dateString(opt.Rule.StartDate), datePtrString(opt.Rule.EndDate), opt.Rule.OccurrenceCount,
		string(opt.ScheduleType), timeStart, timeEnd,
		opt.PurchaseCost.String(), opt.OccurrenceCost.String(), opt.BudgetCost.String(),
		now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToInsert
	}

	if err := replaceBudgets(ctx, tx, id, opt.Budgets); err != nil {
		r.l.Errorf(ctx, "%s budgets: %v", r.dsn("CreateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
}

// GetOneItem retrieves a single item by the provided filters (AND).
// Returns the zero-value item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.CareNeedItem, error) {
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
	if opt.PersonID != "" {
		conds = append(conds, "person_id = ?")
		args = append(args, opt.PersonID)
	}
	if len(conds) == 0 {
		return model.CareNeedItem{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf("SELECT %s FROM care_need_items WHERE %s LIMIT 1",
		itemColumns, strings.Join(conds, " AND "))

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.CareNeedItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToGet
	}

	if err := r.attachBudgets(ctx, []*model.CareNeedItem{&item}); err != nil {
		r.l.Errorf(ctx, "%s budgets: %v", r.dsn("GetOneItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns matching items and the total count. Limit <= 0
// disables pagination.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.CareNeedItem, int, error) {
	conds, args := buildListConds(opt)
	where := strings.Join(conds, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM care_need_items WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM care_need_items WHERE %s ORDER BY created_at DESC", itemColumns, where)
	pageArgs := args
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		pageArgs = append(append([]any{}, args...), opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.CareNeedItem
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}

	refs := make([]*model.CareNeedItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if err := r.attachBudgets(ctx, refs); err != nil {
		r.l.Errorf(ctx, "%s budgets: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem rewrites the mutable fields of an item; a nil Budgets map
// leaves the budget rows untouched. Returns the zero value when the item
// does not exist in the given organization.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.CareNeedItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
		UPDATE care_need_items SET
			name = ?, category = ?, status = ?,
			interval_type = ?, interval_value = ?, start_date = ?, end_date = ?, occurrence_count = ?,
			schedule_type = ?, time_start = ?, time_end = ?,
			purchase_cost = ?, occurrence_cost = ?, budget_cost = ?, updated_at = ?
		WHERE id = ? AND organization_id = ?`

	timeStart, timeEnd := windowStrings(opt.TimeWindow)
	res, err := tx.ExecContext(ctx, query,
		opt.Name, opt.Category, string(opt.Status),
		string(opt.Rule.IntervalType), opt.Rule.IntervalValue,
		dateString(opt.Rule.StartDate), datePtrString(opt.Rule.EndDate), opt.Rule.OccurrenceCount,
		string(opt.ScheduleType), timeStart, timeEnd,
		opt.PurchaseCost.String(), opt.OccurrenceCost.String(), opt.BudgetCost.String(),
		time.Now().UTC(),
		opt.ID, opt.OrganizationID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.CareNeedItem{}, nil
	}

	if opt.Budgets != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM care_need_budgets WHERE item_id = ?", opt.ID); err != nil {
			r.l.Errorf(ctx, "%s clear budgets: %v", r.dsn("UpdateItem"), err)
			return model.CareNeedItem{}, repo.ErrFailedToUpdate
		}
		if err := replaceBudgets(ctx, tx, opt.ID, opt.Budgets); err != nil {
			r.l.Errorf(ctx, "%s budgets: %v", r.dsn("UpdateItem"), err)
			return model.CareNeedItem{}, repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateItem"), err)
		return model.CareNeedItem{}, repo.ErrFailedToUpdate
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// --- helpers ---

func buildListConds(opt repo.ListItemsOptions) ([]string, []any) {
	conds := []string{"1=1"}
	var args []any
	if opt.OrganizationID != "" {
		conds = append(conds, "organization_id = ?")
		args = append(args, opt.OrganizationID)
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
	if opt.OpenEndedOnly {
		conds = append(conds, "end_date IS NULL AND occurrence_count = 0 AND interval_type IN ('daily','weekly','monthly','yearly')")
	}
	return conds, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.CareNeedItem, error) {
	var (
		item                               model.CareNeedItem
		intervalType, status, schedType    string
		startDate, endDate                 sql.NullString
		timeStart, timeEnd                 sql.NullString
		purchaseCost, occCost, budgetCost  string
	)
	err := row.Scan(
		&item.ID, &item.OrganizationID, &item.PersonID, &item.Name, &item.Category, &status,
		&intervalType, &item.Rule.IntervalValue, &startDate, &endDate, &item.Rule.OccurrenceCount,
		&schedType, &timeStart, &timeEnd,
		&purchaseCost, &occCost, &budgetCost, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return model.CareNeedItem{}, err
	}

	item.Status = model.ItemStatus(status)
	item.Rule.IntervalType = model.IntervalType(intervalType)
	item.ScheduleType = model.ScheduleType(schedType)

	if startDate.Valid && startDate.String != "" {
		d, parseErr := time.Parse(dateLayout, startDate.String)
		if parseErr != nil {
			return model.CareNeedItem{}, fmt.Errorf("bad start_date %q: %w", startDate.String, parseErr)
		}
		item.Rule.StartDate = d
	}
	if endDate.Valid && endDate.String != "" {
		d, parseErr := time.Parse(dateLayout, endDate.String)
		if parseErr != nil {
			return model.CareNeedItem{}, fmt.Errorf("bad end_date %q: %w", endDate.String, parseErr)
		}
		item.Rule.EndDate = &d
	}
	if timeStart.Valid && timeStart.String != "" {
		item.TimeWindow = &model.TimeWindow{Start: timeStart.String, End: timeEnd.String}
	}

	if item.PurchaseCost, err = decimal.NewFromString(purchaseCost); err != nil {
		return model.CareNeedItem{}, fmt.Errorf("bad purchase_cost %q: %w", purchaseCost, err)
	}
	if item.OccurrenceCost, err = decimal.NewFromString(occCost); err != nil {
		return model.CareNeedItem{}, fmt.Errorf("bad occurrence_cost %q: %w", occCost, err)
	}
	if item.BudgetCost, err = decimal.NewFromString(budgetCost); err != nil {
		return model.CareNeedItem{}, fmt.Errorf("bad budget_cost %q: %w", budgetCost, err)
	}
	return item, nil
}

func (r *implRepository) attachBudgets(ctx context.Context, items []*model.CareNeedItem) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[string]*model.CareNeedItem, len(items))
	placeholders := make([]string, 0, len(items))
	args := make([]any, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		placeholders = append(placeholders, "?")
		args = append(args, item.ID)
	}

	query := fmt.Sprintf(
		"SELECT item_id, year, amount FROM care_need_budgets WHERE item_id IN (%s) ORDER BY year",
		strings.Join(placeholders, ","))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, amount string
		var year int
		if err := rows.Scan(&itemID, &year, &amount); err != nil {
			return err
		}
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("bad budget amount %q: %w", amount, err)
		}
		if item, ok := byID[itemID]; ok {
			item.Budgets = append(item.Budgets, model.BudgetEntry{Year: year, Amount: amt})
		}
	}
	return rows.Err()
}

func replaceBudgets(ctx context.Context, tx *sql.Tx, itemID string, budgets map[int]decimal.Decimal) error {
	if len(budgets) == 0 {
		return nil
	}
	years := make([]int, 0, len(budgets))
	for year := range budgets {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO care_need_budgets (item_id, year, amount) VALUES (?, ?, ?)",
			itemID, year, budgets[year].String())
		if err != nil {
			return err
		}
	}
	return nil
}

func dateString(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

func datePtrString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

func windowStrings(w *model.TimeWindow) (any, any) {
	if w == nil {
		return nil, nil
	}
	return w.Start, w.End
}

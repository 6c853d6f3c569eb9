package sqlite

import (
	"context"

	"github.com/shopspring/decimal"

	repo "care-coordination/internal/budget/repository"
)

const dateLayout = "2006-01-02"

// CompletedSpend sums per item in Go rather than SQL so the money
// arithmetic stays in decimal; SQLite would coerce the TEXT column to
// float.
func (r *implRepository) CompletedSpend(ctx context.Context, opt repo.SpendOptions) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT t.care_need_item_id, COALESCE(t.cost, i.occurrence_cost)
		FROM care_tasks t
		JOIN care_need_items i ON i.id = t.care_need_item_id
		WHERE t.organization_id = ? AND t.person_id = ? AND t.status = 'completed'
			AND t.due_date >= ? AND t.due_date < ?`

	rows, err := r.db.QueryContext(ctx, query,
		opt.OrganizationID, opt.PersonID,
		opt.From.UTC().Format(dateLayout), opt.To.UTC().Format(dateLayout))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompletedSpend"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	sums := map[string]decimal.Decimal{}
	for rows.Next() {
		var itemID, cost string
		if err := rows.Scan(&itemID, &cost); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CompletedSpend"), err)
			return nil, repo.ErrFailedToAggregate
		}
		amount, err := decimal.NewFromString(cost)
		if err != nil {
			r.l.Errorf(ctx, "%s bad cost %q: %v", r.dsn("CompletedSpend"), cost, err)
			return nil, repo.ErrFailedToAggregate
		}
		sums[itemID] = sums[itemID].Add(amount)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CompletedSpend"), err)
		return nil, repo.ErrFailedToAggregate
	}
	return sums, nil
}

func (r *implRepository) PendingCounts(ctx context.Context, opt repo.SpendOptions) (map[string]int, error) {
	const query = `
		SELECT care_need_item_id, COUNT(*)
		FROM care_tasks
		WHERE organization_id = ? AND person_id = ? AND status IN ('scheduled', 'missed')
			AND due_date >= ? AND due_date < ?
		GROUP BY care_need_item_id`

	rows, err := r.db.QueryContext(ctx, query,
		opt.OrganizationID, opt.PersonID,
		opt.From.UTC().Format(dateLayout), opt.To.UTC().Format(dateLayout))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PendingCounts"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var itemID string
		var n int
		if err := rows.Scan(&itemID, &n); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("PendingCounts"), err)
			return nil, repo.ErrFailedToAggregate
		}
		counts[itemID] = n
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("PendingCounts"), err)
		return nil, repo.ErrFailedToAggregate
	}
	return counts, nil
}

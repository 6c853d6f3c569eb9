package usecase

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"care-coordination/internal/budget"
	repo "care-coordination/internal/budget/repository"
	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
)

// Report builds the per-person annual rollup: completed task spend plus
// one-off purchases per item, bottom-up category and report totals, and
// a warning per row. Returned items are excluded entirely.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input budget.ReportInput) (budget.ReportOutput, error) {
	if input.PersonID == "" {
		return budget.ReportOutput{}, budget.ErrPersonRequired
	}
	if input.Year < 1900 || input.Year > 2999 {
		return budget.ReportOutput{}, budget.ErrInvalidYear
	}
	if persons := sc.VisiblePersons(); persons != nil && !slices.Contains(persons, input.PersonID) {
		return budget.ReportOutput{}, budget.ErrPersonNotVisible
	}

	key := cacheKey(sc.OrganizationID, input.PersonID, input.Year)
	if uc.cache != nil {
		if report, ok := uc.cache.Get(key); ok {
			return budget.ReportOutput{Report: report, Cached: true}, nil
		}
	}

	items, _, err := uc.itemRepo.ListItems(ctx, careneedRepo.ListItemsOptions{
		OrganizationID: sc.OrganizationID,
		PersonID:       input.PersonID,
		Status:         model.ItemStatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report ListItems: %v", err)
		return budget.ReportOutput{}, err
	}

	// UTC year window, upper bound exclusive.
	from := time.Date(input.Year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	opt := repo.SpendOptions{
		OrganizationID: sc.OrganizationID,
		PersonID:       input.PersonID,
		From:           from,
		To:             to,
	}

	completed, err := uc.repo.CompletedSpend(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report CompletedSpend: %v", err)
		return budget.ReportOutput{}, err
	}
	pending, err := uc.repo.PendingCounts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report PendingCounts: %v", err)
		return budget.ReportOutput{}, err
	}

	report := buildReport(input, items, completed, pending, from, to)
	report.GeneratedAt = uc.now().UTC()

	if uc.cache != nil {
		uc.cache.Add(key, report)
	}
	return budget.ReportOutput{Report: report}, nil
}

func buildReport(input budget.ReportInput, items []model.CareNeedItem,
	completed map[string]decimal.Decimal, pending map[string]int, from, to time.Time) budget.Report {

	byCategory := map[string][]budget.ItemReport{}
	for _, item := range items {
		row := buildItemRow(item, input.Year, completed, pending, from, to)
		byCategory[item.Category] = append(byCategory[item.Category], row)
	}

	report := budget.Report{
		PersonID: input.PersonID,
		Year:     input.Year,
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rows := byCategory[name]
		sortItemRows(rows)

		cat := budget.CategoryReport{Category: name, Items: rows}
		for _, row := range rows {
			cat.AnnualBudget = cat.AnnualBudget.Add(row.AnnualBudget)
			cat.Spent = cat.Spent.Add(row.Spent)
			cat.Expected = cat.Expected.Add(row.Expected)
		}
		cat.Balance = cat.AnnualBudget.Sub(cat.Spent)
		cat.Warning = Classify(cat.AnnualBudget, cat.Spent, cat.Expected)

		report.AnnualBudget = report.AnnualBudget.Add(cat.AnnualBudget)
		report.Spent = report.Spent.Add(cat.Spent)
		report.Expected = report.Expected.Add(cat.Expected)
		report.Categories = append(report.Categories, cat)
	}

	report.Balance = report.AnnualBudget.Sub(report.Spent)
	report.Warning = Classify(report.AnnualBudget, report.Spent, report.Expected)
	return report
}

func buildItemRow(item model.CareNeedItem, year int,
	completed map[string]decimal.Decimal, pending map[string]int, from, to time.Time) budget.ItemReport {

	spent := completed[item.ID]
	// One-off purchases are recognized once, at the rule's start date.
	if !item.Rule.StartDate.IsZero() {
		start := item.Rule.StartDate.UTC()
		if !start.Before(from) && start.Before(to) {
			spent = spent.Add(item.PurchaseCost)
		}
	}

	expected := item.OccurrenceCost.Mul(decimal.NewFromInt(int64(pending[item.ID])))
	annual := item.BudgetFor(year)

	return budget.ItemReport{
		ItemID:       item.ID,
		Name:         item.Name,
		Category:     item.Category,
		AnnualBudget: annual,
		Spent:        spent,
		Expected:     expected,
		Balance:      annual.Sub(spent),
		Warning:      Classify(annual, spent, expected),
	}
}

// sortItemRows surfaces the most urgent items first: descending
// severity, ties broken by descending overspend (spent minus budget).
func sortItemRows(rows []budget.ItemReport) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i].Warning.Level.Severity(), rows[j].Warning.Level.Severity()
		if si != sj {
			return si > sj
		}
		oi := rows[i].Spent.Sub(rows[i].AnnualBudget)
		oj := rows[j].Spent.Sub(rows[j].AnnualBudget)
		return oi.GreaterThan(oj)
	})
}

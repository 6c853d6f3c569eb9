package http

import (
	"github.com/shopspring/decimal"

	"care-coordination/internal/budget"
	"care-coordination/pkg/response"
)

type reportReq struct {
	PersonID string `form:"person_id"`
	Year     int    `form:"year"`
}

func (r reportReq) toInput() budget.ReportInput {
	return budget.ReportInput{PersonID: r.PersonID, Year: r.Year}
}

type warningResp struct {
	Level  string `json:"level"`
	Reason string `json:"reason,omitempty"`
}

func newWarningResp(w budget.Warning) warningResp {
	return warningResp{Level: string(w.Level), Reason: w.Reason}
}

type itemReportResp struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	AnnualBudget decimal.Decimal `json:"annual_budget"`
	Spent        decimal.Decimal `json:"spent"`
	Expected     decimal.Decimal `json:"expected"`
	Balance      decimal.Decimal `json:"balance"`
	Warning      warningResp     `json:"warning"`
}

type categoryReportResp struct {
	Category string `json:"category"`

	AnnualBudget decimal.Decimal `json:"annual_budget"`
	Spent        decimal.Decimal `json:"spent"`
	Expected     decimal.Decimal `json:"expected"`
	Balance      decimal.Decimal `json:"balance"`
	Warning      warningResp     `json:"warning"`

	Items []itemReportResp `json:"items"`
}

type reportResp struct {
	PersonID string `json:"person_id"`
	Year     int    `json:"year"`

	AnnualBudget decimal.Decimal `json:"annual_budget"`
	Spent        decimal.Decimal `json:"spent"`
	Expected     decimal.Decimal `json:"expected"`
	Balance      decimal.Decimal `json:"balance"`
	Warning      warningResp     `json:"warning"`

	Categories []categoryReportResp `json:"categories"`

	GeneratedAt response.DateTime `json:"generated_at"`
	Cached      bool              `json:"cached"`
}

func newReportResp(output budget.ReportOutput) reportResp {
	report := output.Report
	resp := reportResp{
		PersonID:     report.PersonID,
		Year:         report.Year,
		AnnualBudget: report.AnnualBudget,
		Spent:        report.Spent,
		Expected:     report.Expected,
		Balance:      report.Balance,
		Warning:      newWarningResp(report.Warning),
		Categories:   make([]categoryReportResp, 0, len(report.Categories)),
		GeneratedAt:  response.DateTime(report.GeneratedAt),
		Cached:       output.Cached,
	}
	for _, cat := range report.Categories {
		catResp := categoryReportResp{
			Category:     cat.Category,
			AnnualBudget: cat.AnnualBudget,
			Spent:        cat.Spent,
			Expected:     cat.Expected,
			Balance:      cat.Balance,
			Warning:      newWarningResp(cat.Warning),
			Items:        make([]itemReportResp, 0, len(cat.Items)),
		}
		for _, row := range cat.Items {
			catResp.Items = append(catResp.Items, itemReportResp{
				ItemID:       row.ItemID,
				Name:         row.Name,
				Category:     row.Category,
				AnnualBudget: row.AnnualBudget,
				Spent:        row.Spent,
				Expected:     row.Expected,
				Balance:      row.Balance,
				Warning:      newWarningResp(row.Warning),
			})
		}
		resp.Categories = append(resp.Categories, catResp)
	}
	return resp
}

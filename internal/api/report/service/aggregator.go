package reportService

import (
	"time"

	"finflow/internal/api/report"
	reportRepository "finflow/internal/api/report/repository"
	"finflow/internal/entity"
	"finflow/pkg/money"

	"github.com/shopspring/decimal"
)

// monthWindow returns [first day of month, first day of next month) in UTC.
func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func validPeriod(year, month int) bool {
	return year >= 1000 && year <= 9999 && month >= 1 && month <= 12
}

// buildSummary derives the aggregate view from raw records. Income and
// expense totals cover the report window only; budget usedAmount is lifetime
// spend, so remaining and percentUsed reflect all-time utilization.
func buildSummary(
	incomes []entity.Income,
	expenses []entity.Expense,
	budgets []reportRepository.BudgetUsage,
	totalSaving decimal.Decimal,
) report.SummaryView {
	totalIncome := decimal.Zero
	for _, i := range incomes {
		totalIncome = totalIncome.Add(i.Amount)
	}

	totalExpense := decimal.Zero
	for _, e := range expenses {
		totalExpense = totalExpense.Add(e.Amount)
	}

	totalRemaining := decimal.Zero
	budgetViews := make([]report.BudgetUsageView, 0, len(budgets))
	for _, b := range budgets {
		remaining := b.Budget.Price.Sub(b.UsedAmount)
		totalRemaining = totalRemaining.Add(remaining)
		budgetViews = append(budgetViews, makeBudgetUsageView(b))
	}

	return report.SummaryView{
		TotalIncome:          money.ToFloat(totalIncome),
		TotalExpense:         money.ToFloat(totalExpense),
		TotalSaving:          money.ToFloat(totalSaving),
		TotalRemainingAmount: money.ToFloat(totalRemaining),
		Budgets:              budgetViews,
	}
}

func makeBudgetUsageView(b reportRepository.BudgetUsage) report.BudgetUsageView {
	remaining := b.Budget.Price.Sub(b.UsedAmount)
	return report.BudgetUsageView{
		ID:              b.Budget.ID,
		BudgetName:      b.Budget.BudgetName,
		Allocated:       money.ToFloat(b.Budget.Price),
		UsedAmount:      money.ToFloat(b.UsedAmount),
		MonthUsedAmount: money.ToFloat(b.MonthUsedAmount),
		RemainingAmount: money.ToFloat(remaining),
		PercentUsed:     money.PercentUsed(b.UsedAmount, b.Budget.Price),
	}
}

func makeIncomeViews(incomes []entity.Income) []report.IncomeView {
	views := make([]report.IncomeView, 0, len(incomes))
	for _, i := range incomes {
		views = append(views, report.IncomeView{
			ID:          i.ID,
			Title:       i.Title,
			Description: i.Description,
			Amount:      money.ToFloat(i.Amount),
			CreatedAt:   i.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}

func makeExpenseViews(expenses []entity.Expense) []report.ExpenseView {
	views := make([]report.ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, report.ExpenseView{
			ID:          e.ID,
			BudgetID:    e.BudgetID,
			Title:       e.Title,
			Description: e.Description,
			Amount:      money.ToFloat(e.Amount),
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}

func makeGoalViews(goals []entity.Goal, currentSaving decimal.Decimal) []report.GoalView {
	views := make([]report.GoalView, 0, len(goals))
	for _, g := range goals {
		progress := 1.0
		if !g.Completed {
			progress = g.Progress(currentSaving)
		}
		views = append(views, report.GoalView{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Amount:      money.ToFloat(g.Amount),
			Completed:   g.Completed,
			Progress:    progress,
			CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}

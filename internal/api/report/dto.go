package report

// BudgetUsageView exposes both lifetime and month-scoped spend against a
// budget. Lifetime usage drives remaining and percentUsed.
type BudgetUsageView struct {
	ID              string   `json:"id"`
	BudgetName      string   `json:"budgetName"`
	Allocated       float64  `json:"allocated"`
	UsedAmount      float64  `json:"usedAmount"`
	MonthUsedAmount float64  `json:"monthUsedAmount"`
	RemainingAmount float64  `json:"remainingAmount"`
	PercentUsed     *float64 `json:"percentUsed"`
}

type SummaryView struct {
	TotalIncome          float64           `json:"totalIncome"`
	TotalExpense         float64           `json:"totalExpense"`
	TotalSaving          float64           `json:"totalSaving"`
	TotalRemainingAmount float64           `json:"totalRemainingAmount"`
	Budgets              []BudgetUsageView `json:"budgets"`
}

type IncomeView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"createdAt"`
}

type ExpenseView struct {
	ID          string  `json:"id"`
	BudgetID    string  `json:"budgetId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"createdAt"`
}

type GoalView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Completed   bool    `json:"completed"`
	Progress    float64 `json:"progress"`
	CreatedAt   string  `json:"createdAt"`
}

type ReportResponse struct {
	Summary               []SummaryView     `json:"summary"`
	Incomes               []IncomeView      `json:"incomes"`
	Expenses              []ExpenseView     `json:"expenses"`
	BudgetsWithUsedAmount []BudgetUsageView `json:"budgetsWithUsedAmount"`
	Goals                 []GoalView        `json:"goals"`
}

type DashboardResponse struct {
	Summary               []SummaryView     `json:"summary"`
	Incomes               []IncomeView      `json:"incomes"`
	Expenses              []ExpenseView     `json:"expenses"`
	BudgetsWithUsedAmount []BudgetUsageView `json:"budgetsWithUsedAmount"`
	PendingGoals          []GoalView        `json:"pendingGoals"`
	CompletedGoals        []GoalView        `json:"completedGoals"`
}

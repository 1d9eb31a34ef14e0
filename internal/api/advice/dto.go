package advice

// AdviceRequest carries the financial snapshot the prompt is built from.
// Missing numeric fields decode to 0 and missing lists to empty slices, so
// the builder never sees an absent value.
type AdviceRequest struct {
	TotalBudget          float64         `json:"totalBudget"`
	TotalExpense         float64         `json:"totalExpense"`
	TotalIncome          float64         `json:"totalIncome"`
	TotalSaving          float64         `json:"totalSaving"`
	TotalRemainingAmount float64         `json:"totalRemainingAmount"`
	PendingGoals         []AdviceGoal    `json:"pendingGoals"`
	Budgets              []AdviceBudget  `json:"budgets"`
	Expenses             []AdviceExpense `json:"expenses"`
	Incomes              []AdviceIncome  `json:"incomes"`
}

type AdviceBudget struct {
	ID         string  `json:"id"`
	BudgetName string  `json:"budgetName"`
	Price      float64 `json:"price"`
}

type AdviceExpense struct {
	BudgetID string  `json:"budgetId"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
}

type AdviceIncome struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type AdviceGoal struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}

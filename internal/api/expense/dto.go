package expense

type CreateExpenseRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	BudgetID    string  `json:"budgetId"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateExpenseRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	BudgetID    string  `json:"budgetId"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	BudgetID    string  `json:"budgetId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ReceiptURL  string  `json:"receiptUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

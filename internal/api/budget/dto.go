package budget

type CreateBudgetRequest struct {
	UserID     string  `json:"user_id" validate:"required"`
	BudgetName string  `json:"budgetName" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

type UpdateBudgetRequest struct {
	ID         string  `json:"id" validate:"required"`
	UserID     string  `json:"user_id" validate:"required"`
	BudgetName string  `json:"budgetName" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

type BudgetResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	BudgetName string  `json:"budgetName"`
	Price      float64 `json:"price"`
	// UsedAmount is lifetime spend against the budget, recomputed from the
	// expense table on every read.
	UsedAmount      float64  `json:"usedAmount"`
	RemainingAmount float64  `json:"remainingAmount"`
	PercentUsed     *float64 `json:"percentUsed"`
	CreatedAt       string   `json:"createdAt"`
}

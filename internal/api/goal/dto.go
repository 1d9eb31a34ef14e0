package goal

type CreateGoalRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateGoalRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type GoalResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
	// Progress is the share of the goal target covered by the current
	// saving balance, clamped to [0, 1].
	Progress  float64 `json:"progress"`
	CreatedAt string  `json:"createdAt"`
}

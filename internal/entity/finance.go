package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetIDOther is the sentinel budget reference for expenses that are not
// allocated against any budget.
const BudgetIDOther = "0"

type Budget struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	BudgetName string          `db:"budget_name"`
	Price      decimal.Decimal `db:"price"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

type Income struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Expense struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	BudgetID    string          `db:"budget_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	ReceiptURL  string          `db:"receipt_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (e *Expense) Unbudgeted() bool {
	return e.BudgetID == "" || e.BudgetID == BudgetIDOther
}

type Goal struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Completed   bool            `db:"completed"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// Progress reports how far the current saving covers the goal target,
// clamped to [0, 1]. Targets of zero count as fully covered.
func (g *Goal) Progress(currentSaving decimal.Decimal) float64 {
	if g.Amount.IsZero() {
		return 1.0
	}
	ratio := currentSaving.Div(g.Amount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return 1.0
	}
	if ratio.IsNegative() {
		return 0.0
	}
	f, _ := ratio.Round(4).Float64()
	return f
}

// Wallet tracks the only stored piece of savings state: the running total
// deducted by completed goals. The all-time saving balance itself is
// recomputed from income and expense sums on every read.
type Wallet struct {
	UserID        string          `db:"user_id"`
	TotalDeducted decimal.Decimal `db:"total_deducted"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

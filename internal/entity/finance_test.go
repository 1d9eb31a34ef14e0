package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name     string
		target   int64
		saving   int64
		expected float64
	}{
		{"half funded", 1000, 500, 0.5},
		{"fully funded", 500, 500, 1.0},
		{"overfunded clamps to one", 500, 900, 1.0},
		{"negative saving clamps to zero", 500, -100, 0.0},
		{"zero target counts as covered", 0, 0, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{Amount: decimal.NewFromInt(tc.target)}
			assert.Equal(t, tc.expected, g.Progress(decimal.NewFromInt(tc.saving)))
		})
	}
}

func TestExpenseUnbudgeted(t *testing.T) {
	assert.True(t, (&Expense{BudgetID: ""}).Unbudgeted())
	assert.True(t, (&Expense{BudgetID: BudgetIDOther}).Unbudgeted())
	assert.False(t, (&Expense{BudgetID: "01HZX"}).Unbudgeted())
}

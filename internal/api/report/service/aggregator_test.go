package reportService

import (
	"testing"
	"time"

	reportRepository "finflow/internal/api/report/repository"
	"finflow/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	start, end := monthWindow(2025, 1)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year.
	start, end = monthWindow(2025, 12)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		valid       bool
	}{
		{2025, 6, true},
		{1000, 1, true},
		{9999, 12, true},
		{999, 6, false},
		{10000, 6, false},
		{2025, 0, false},
		{2025, 13, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, validPeriod(tc.year, tc.month),
			"year=%d month=%d", tc.year, tc.month)
	}
}

func TestBuildSummary_EmptyMonthIsZeroNotError(t *testing.T) {
	summary := buildSummary(nil, nil, nil, decimal.Zero)

	assert.Equal(t, 0.0, summary.TotalIncome)
	assert.Equal(t, 0.0, summary.TotalExpense)
	assert.Equal(t, 0.0, summary.TotalRemainingAmount)
	assert.Empty(t, summary.Budgets)
}

func TestBuildSummary_BudgetUtilization(t *testing.T) {
	budgets := []reportRepository.BudgetUsage{
		{
			Budget: entity.Budget{
				ID:         "b1",
				BudgetName: "Groceries",
				Price:      decimal.NewFromInt(1000),
			},
			UsedAmount:      decimal.NewFromInt(300),
			MonthUsedAmount: decimal.NewFromInt(120),
		},
	}

	summary := buildSummary(nil, nil, budgets, decimal.NewFromInt(50))

	require.Len(t, summary.Budgets, 1)
	b := summary.Budgets[0]
	assert.Equal(t, 1000.0, b.Allocated)
	assert.Equal(t, 300.0, b.UsedAmount)
	assert.Equal(t, 120.0, b.MonthUsedAmount)
	assert.Equal(t, 700.0, b.RemainingAmount)
	require.NotNil(t, b.PercentUsed)
	assert.Equal(t, 30.0, *b.PercentUsed)

	assert.Equal(t, 700.0, summary.TotalRemainingAmount)
	assert.Equal(t, 50.0, summary.TotalSaving)
}

func TestBuildSummary_ZeroAllocationPercentIsNil(t *testing.T) {
	budgets := []reportRepository.BudgetUsage{
		{
			Budget:     entity.Budget{ID: "b1", BudgetName: "Empty"},
			UsedAmount: decimal.NewFromInt(40),
		},
	}

	summary := buildSummary(nil, nil, budgets, decimal.Zero)

	require.Len(t, summary.Budgets, 1)
	assert.Nil(t, summary.Budgets[0].PercentUsed)
}

func TestBuildSummary_WindowTotals(t *testing.T) {
	incomes := []entity.Income{
		{Amount: decimal.NewFromInt(500)},
		{Amount: decimal.NewFromFloat(250.50)},
	}
	expenses := []entity.Expense{
		{Amount: decimal.NewFromFloat(100.25)},
		{Amount: decimal.NewFromInt(50)},
	}

	summary := buildSummary(incomes, expenses, nil, decimal.Zero)

	assert.Equal(t, 750.50, summary.TotalIncome)
	assert.Equal(t, 150.25, summary.TotalExpense)
}

func TestMakeGoalViews_Progress(t *testing.T) {
	goals := []entity.Goal{
		{ID: "g1", Title: "Bike", Amount: decimal.NewFromInt(1000)},
		{ID: "g2", Title: "Done", Amount: decimal.NewFromInt(100), Completed: true},
	}

	views := makeGoalViews(goals, decimal.NewFromInt(500))

	require.Len(t, views, 2)
	assert.Equal(t, 0.5, views[0].Progress)
	assert.False(t, views[0].Completed)
	assert.Equal(t, 1.0, views[1].Progress, "completed goals pin progress at 1")
}

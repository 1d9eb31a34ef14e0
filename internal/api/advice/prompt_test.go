package advice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullRequest() AdviceRequest {
	return AdviceRequest{
		TotalBudget:          1000,
		TotalExpense:         300,
		TotalIncome:          900,
		TotalSaving:          600,
		TotalRemainingAmount: 700,
		Budgets: []AdviceBudget{
			{ID: "b1", BudgetName: "Groceries", Price: 500},
			{ID: "b2", BudgetName: "Transport", Price: 100},
		},
		Expenses: []AdviceExpense{
			{BudgetID: "b1", Title: "Market run", Amount: 250},
			{BudgetID: "b2", Title: "Fuel", Amount: 150},
		},
		Incomes: []AdviceIncome{
			{Title: "Salary", Amount: 900},
		},
		PendingGoals: []AdviceGoal{
			{Title: "Emergency fund", Amount: 2000},
		},
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := fullRequest()
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}

func TestBuildPrompt_AllSectionsPresent(t *testing.T) {
	prompt := BuildPrompt(fullRequest())

	assert.Contains(t, prompt, "--- USER FINANCIAL DETAILS ---")
	assert.Contains(t, prompt, "--- BUDGET BREAKDOWN ---")
	assert.Contains(t, prompt, "--- INCOME SOURCES ---")
	assert.Contains(t, prompt, "--- EXPENSES ---")
	assert.Contains(t, prompt, "--- SAVINGS & GOALS ---")
	assert.Contains(t, prompt, "--- ANALYSIS & RECOMMENDATIONS ---")
	assert.Contains(t, prompt, "1. Expense & Income Analysis:")
	assert.Contains(t, prompt, "2. Savings & Goals:")
	assert.Contains(t, prompt, "3. Next Steps:")
}

func TestBuildPrompt_OmitsEmptySections(t *testing.T) {
	prompt := BuildPrompt(AdviceRequest{})

	assert.Contains(t, prompt, "--- USER FINANCIAL DETAILS ---")
	assert.NotContains(t, prompt, "--- BUDGET BREAKDOWN ---")
	assert.NotContains(t, prompt, "--- INCOME SOURCES ---")
	assert.NotContains(t, prompt, "--- EXPENSES ---")
	assert.Contains(t, prompt, "No pending financial goals.")
}

func TestBuildPrompt_ComputesPerBudgetUsage(t *testing.T) {
	prompt := BuildPrompt(fullRequest())

	// Groceries: 250 of 500 used (50%), 250 left.
	assert.Contains(t, prompt, "• Groceries: Rs.500 allocated | Rs.250 used (50%) | Rs.250 left")
	// Transport: 150 of 100 used (150%), overspent.
	assert.Contains(t, prompt, "• Transport: Rs.100 allocated | Rs.150 used (150%) | Rs.-50 left")
	assert.Contains(t, prompt, "Overspent categories: Transport")
}

func TestBuildPrompt_SavingsPotential(t *testing.T) {
	prompt := BuildPrompt(fullRequest())
	assert.Contains(t, prompt, "• Monthly Savings Potential: Rs.600")
}

func TestBuildPrompt_ZeroAllocationDoesNotDivide(t *testing.T) {
	prompt := BuildPrompt(AdviceRequest{
		Budgets:  []AdviceBudget{{ID: "b1", BudgetName: "Empty", Price: 0}},
		Expenses: []AdviceExpense{{BudgetID: "b1", Title: "Oops", Amount: 10}},
	})

	assert.Contains(t, prompt, "• Empty: Rs.0 allocated | Rs.10 used (0%)")
}

func TestBuildPrompt_DefaultsForMissingTitles(t *testing.T) {
	prompt := BuildPrompt(AdviceRequest{
		Incomes:      []AdviceIncome{{Amount: 100}},
		Expenses:     []AdviceExpense{{Amount: 50}},
		PendingGoals: []AdviceGoal{{Amount: 10}},
		Budgets:      []AdviceBudget{{ID: "b1", Price: 5}},
	})

	assert.Contains(t, prompt, "• Untitled: Rs.100")
	assert.Contains(t, prompt, "• Untitled: Rs.50")
	assert.Contains(t, prompt, "• Unnamed Goal: Rs.10")
	assert.Contains(t, prompt, "• Uncategorized: Rs.5 allocated")
}

func TestFormatAdvice_BreaksHeadingsAndBullets(t *testing.T) {
	raw := "Intro. 1. Expense & Income Analysis: spending is high. " +
		"2. Savings & Goals: keep saving. 3. Next Steps: • cut costs • save more"

	formatted := FormatAdvice(raw)

	assert.Contains(t, formatted, "\n\n1. Expense & Income Analysis:\n")
	assert.Contains(t, formatted, "\n\n2. Savings & Goals:\n")
	assert.Contains(t, formatted, "\n\n3. Next Steps:\n")
	assert.Equal(t, 2, strings.Count(formatted, "\n•"))
}

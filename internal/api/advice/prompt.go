package advice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type budgetUtilization struct {
	category  string
	allocated float64
	used      float64
	remaining float64
}

// BuildPrompt renders the financial snapshot into the advisor prompt. Pure
// string construction: identical input always yields identical output, and
// sections backed by empty lists are omitted entirely.
func BuildPrompt(req AdviceRequest) string {
	categorySpending := make(map[string]float64)
	for _, e := range req.Expenses {
		categorySpending[e.BudgetID] += e.Amount
	}

	utilization := make([]budgetUtilization, 0, len(req.Budgets))
	for _, b := range req.Budgets {
		category := b.BudgetName
		if category == "" {
			category = "Uncategorized"
		}
		used := categorySpending[b.ID]
		utilization = append(utilization, budgetUtilization{
			category:  category,
			allocated: b.Price,
			used:      used,
			remaining: b.Price - used,
		})
	}

	overspent := make([]string, 0)
	for _, u := range utilization {
		if u.used > u.allocated {
			overspent = append(overspent, u.category)
		}
	}

	savingsPotential := req.TotalIncome - req.TotalExpense

	var sb strings.Builder

	sb.WriteString("As a financial advisor, analyze the following user's financial data and provide personalized, actionable recommendations.\n")
	sb.WriteString("Compare all values and highlight strengths, weaknesses, and opportunities for improvement.\n\n")

	sb.WriteString("--- USER FINANCIAL DETAILS ---\n")
	sb.WriteString(fmt.Sprintf("• Total Budget: Rs.%s\n", formatAmount(req.TotalBudget)))
	sb.WriteString(fmt.Sprintf("• Total Remaining Amount: Rs.%s\n", formatAmount(req.TotalRemainingAmount)))
	sb.WriteString(fmt.Sprintf("• Total Income: Rs.%s\n", formatAmount(req.TotalIncome)))
	sb.WriteString(fmt.Sprintf("• Total Expenses: Rs.%s\n", formatAmount(req.TotalExpense)))
	sb.WriteString(fmt.Sprintf("• Current Savings: Rs.%s\n", formatAmount(req.TotalSaving)))

	if len(utilization) > 0 {
		sb.WriteString("\n--- BUDGET BREAKDOWN ---\n")
		for _, u := range utilization {
			sb.WriteString(fmt.Sprintf("• %s: Rs.%s allocated | Rs.%s used (%d%%) | Rs.%s left\n",
				u.category,
				formatAmount(u.allocated),
				formatAmount(u.used),
				percentOf(u.used, u.allocated),
				formatAmount(u.remaining)))
		}
		if len(overspent) > 0 {
			sb.WriteString(fmt.Sprintf("Overspent categories: %s\n", strings.Join(overspent, ", ")))
		}
	}

	if len(req.Incomes) > 0 {
		sb.WriteString("\n--- INCOME SOURCES ---\n")
		for _, i := range req.Incomes {
			sb.WriteString(fmt.Sprintf("• %s: Rs.%s\n", titleOrDefault(i.Title, "Untitled"), formatAmount(i.Amount)))
		}
	}

	if len(req.Expenses) > 0 {
		sb.WriteString("\n--- EXPENSES ---\n")
		for _, e := range req.Expenses {
			sb.WriteString(fmt.Sprintf("• %s: Rs.%s\n", titleOrDefault(e.Title, "Untitled"), formatAmount(e.Amount)))
		}
	}

	sb.WriteString("\n--- SAVINGS & GOALS ---\n")
	sb.WriteString(fmt.Sprintf("• Monthly Savings Potential: Rs.%s\n", formatAmount(savingsPotential)))
	if len(req.PendingGoals) > 0 {
		sb.WriteString("Pending Goals:\n")
		for _, g := range req.PendingGoals {
			sb.WriteString(fmt.Sprintf("• %s: Rs.%s\n", titleOrDefault(g.Title, "Unnamed Goal"), formatAmount(g.Amount)))
		}
	} else {
		sb.WriteString("No pending financial goals.\n")
	}

	sb.WriteString("\n--- ANALYSIS & RECOMMENDATIONS ---\n")
	sb.WriteString("Please compare all the above details and provide advice in the following format, starting each section on a new line:\n\n")
	sb.WriteString("1. Expense & Income Analysis: [One sentence comparing income and expenses, highlighting any issues or strengths.]\n")
	sb.WriteString("2. Savings & Goals: [One sentence about savings and pending goals, with a practical tip.]\n")
	sb.WriteString("3. Next Steps: [Bullet points with 2-3 immediate, actionable steps.]\n\n")
	sb.WriteString("Make your advice specific to the numbers above, concise, and easy to follow.\n")

	return sb.String()
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func percentOf(used, allocated float64) int {
	if allocated == 0 {
		return 0
	}
	return int(math.Round(used / allocated * 100))
}

func titleOrDefault(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}

var adviceFormatter = strings.NewReplacer(
	"1. Budget Optimization:", "\n\n1. Budget Optimization:\n",
	"1. Expense & Income Analysis:", "\n\n1. Expense & Income Analysis:\n",
	"2. Expense & Income Analysis:", "\n\n2. Expense & Income Analysis:\n",
	"2. Savings & Goals:", "\n\n2. Savings & Goals:\n",
	"3. Savings & Goals:", "\n\n3. Savings & Goals:\n",
	"3. Next Steps:", "\n\n3. Next Steps:\n",
	"4. Next Steps:", "\n\n4. Next Steps:\n",
	"•", "\n•",
)

// FormatAdvice pushes numbered section headings and bullets onto their own
// lines for display. Cosmetic only.
func FormatAdvice(text string) string {
	return adviceFormatter.Replace(text)
}

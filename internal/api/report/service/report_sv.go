package reportService

import (
	"time"

	"finflow/internal/api/report"
	contextPkg "finflow/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *reportService) GetMonthlyReport(ctx context.Context, userID string, year, month int) (report.ReportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !validPeriod(year, month) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"year":       year,
			"month":      month,
		}).Warn("Invalid report period")
		return report.ReportResponse{}, report.ErrInvalidPeriod
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.ReportResponse{}, err
	}

	exists, err := repo.Reports.UserExists(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to check user existence")
		return report.ReportResponse{}, err
	}
	if !exists {
		return report.ReportResponse{}, report.ErrUserNotFound
	}

	start, end := monthWindow(year, month)

	incomes, err := repo.Reports.GetIncomesInWindow(ctx, userID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get incomes in window")
		return report.ReportResponse{}, err
	}

	expenses, err := repo.Reports.GetExpensesInWindow(ctx, userID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get expenses in window")
		return report.ReportResponse{}, err
	}

	budgets, err := repo.Reports.GetBudgetUsage(ctx, userID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get budget usage")
		return report.ReportResponse{}, err
	}

	goals, err := repo.Reports.GetGoalsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get goals")
		return report.ReportResponse{}, err
	}

	totalSaving, err := repo.Reports.GetTotalSaving(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get total saving")
		return report.ReportResponse{}, err
	}

	summary := buildSummary(incomes, expenses, budgets, totalSaving)

	return report.ReportResponse{
		Summary:               []report.SummaryView{summary},
		Incomes:               makeIncomeViews(incomes),
		Expenses:              makeExpenseViews(expenses),
		BudgetsWithUsedAmount: summary.Budgets,
		Goals:                 makeGoalViews(goals, totalSaving),
	}, nil
}

func (s *reportService) GetDashboard(ctx context.Context, userID string) (report.DashboardResponse, error) {
	now := time.Now().UTC()

	monthly, err := s.GetMonthlyReport(ctx, userID, now.Year(), int(now.Month()))
	if err != nil {
		return report.DashboardResponse{}, err
	}

	pending := make([]report.GoalView, 0, len(monthly.Goals))
	completed := make([]report.GoalView, 0)
	for _, g := range monthly.Goals {
		if g.Completed {
			completed = append(completed, g)
		} else {
			pending = append(pending, g)
		}
	}

	return report.DashboardResponse{
		Summary:               monthly.Summary,
		Incomes:               monthly.Incomes,
		Expenses:              monthly.Expenses,
		BudgetsWithUsedAmount: monthly.BudgetsWithUsedAmount,
		PendingGoals:          pending,
		CompletedGoals:        completed,
	}, nil
}

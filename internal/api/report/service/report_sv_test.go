package reportService

import (
	"testing"
	"time"

	"finflow/internal/api/report"
	reportRepository "finflow/internal/api/report/repository"
	"finflow/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeReportStore struct {
	users       map[string]bool
	incomes     []entity.Income
	expenses    []entity.Expense
	budgets     []reportRepository.BudgetUsage
	goals       []entity.Goal
	totalSaving decimal.Decimal
}

func (f *fakeReportStore) UserExists(ctx context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeReportStore) GetIncomesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Income, error) {
	result := make([]entity.Income, 0)
	for _, i := range f.incomes {
		if i.UserID == userID && !i.CreatedAt.Before(start) && i.CreatedAt.Before(end) {
			result = append(result, i)
		}
	}
	return result, nil
}

func (f *fakeReportStore) GetExpensesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Expense, error) {
	result := make([]entity.Expense, 0)
	for _, e := range f.expenses {
		if e.UserID == userID && !e.CreatedAt.Before(start) && e.CreatedAt.Before(end) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeReportStore) GetBudgetUsage(ctx context.Context, userID string, start, end time.Time) ([]reportRepository.BudgetUsage, error) {
	result := make([]reportRepository.BudgetUsage, 0)
	for _, b := range f.budgets {
		if b.Budget.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeReportStore) GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	result := make([]entity.Goal, 0)
	for _, g := range f.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeReportStore) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.totalSaving, nil
}

type fakeReportRepository struct {
	store *fakeReportStore
}

func (f *fakeReportRepository) NewClient(tx bool) (reportRepository.Client, error) {
	return reportRepository.Client{
		Reports:  f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestReportService(store *fakeReportStore) IReportService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewReportService(log, &fakeReportRepository{store: store})
}

func TestGetMonthlyReport_InvalidPeriod(t *testing.T) {
	svc := newTestReportService(&fakeReportStore{users: map[string]bool{"u1": true}})

	cases := []struct{ year, month int }{
		{999, 5},
		{10000, 5},
		{2025, 0},
		{2025, 13},
	}

	for _, tc := range cases {
		_, err := svc.GetMonthlyReport(context.Background(), "u1", tc.year, tc.month)
		assert.ErrorIs(t, err, report.ErrInvalidPeriod, "year=%d month=%d", tc.year, tc.month)
	}
}

func TestGetMonthlyReport_UnknownUser(t *testing.T) {
	svc := newTestReportService(&fakeReportStore{users: map[string]bool{}})

	_, err := svc.GetMonthlyReport(context.Background(), "ghost", 2025, 5)
	assert.ErrorIs(t, err, report.ErrUserNotFound)
}

func TestGetMonthlyReport_EmptyMonthReturnsEmptyArrays(t *testing.T) {
	svc := newTestReportService(&fakeReportStore{
		users:       map[string]bool{"u1": true},
		totalSaving: decimal.Zero,
	})

	res, err := svc.GetMonthlyReport(context.Background(), "u1", 2025, 5)
	require.NoError(t, err)

	require.Len(t, res.Summary, 1)
	assert.Equal(t, 0.0, res.Summary[0].TotalIncome)
	assert.Equal(t, 0.0, res.Summary[0].TotalExpense)
	assert.NotNil(t, res.Incomes)
	assert.NotNil(t, res.Expenses)
	assert.NotNil(t, res.BudgetsWithUsedAmount)
	assert.NotNil(t, res.Goals)
	assert.Empty(t, res.Incomes)
	assert.Empty(t, res.Expenses)
}

func TestGetMonthlyReport_FiltersByWindow(t *testing.T) {
	inMonth := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)
	outOfMonth := time.Date(2025, 4, 30, 23, 59, 0, 0, time.UTC)

	store := &fakeReportStore{
		users: map[string]bool{"u1": true},
		incomes: []entity.Income{
			{ID: "i1", UserID: "u1", Amount: decimal.NewFromInt(500), CreatedAt: inMonth},
			{ID: "i2", UserID: "u1", Amount: decimal.NewFromInt(900), CreatedAt: outOfMonth},
		},
		expenses: []entity.Expense{
			{ID: "e1", UserID: "u1", Amount: decimal.NewFromInt(200), CreatedAt: inMonth},
		},
		totalSaving: decimal.NewFromInt(1200),
	}
	svc := newTestReportService(store)

	res, err := svc.GetMonthlyReport(context.Background(), "u1", 2025, 5)
	require.NoError(t, err)

	require.Len(t, res.Summary, 1)
	assert.Equal(t, 500.0, res.Summary[0].TotalIncome, "income outside the window is excluded")
	assert.Equal(t, 200.0, res.Summary[0].TotalExpense)
	assert.Equal(t, 1200.0, res.Summary[0].TotalSaving)
	require.Len(t, res.Incomes, 1)
	assert.Equal(t, "i1", res.Incomes[0].ID)
}

func TestGetMonthlyReport_LifetimeBudgetUsage(t *testing.T) {
	store := &fakeReportStore{
		users: map[string]bool{"u1": true},
		budgets: []reportRepository.BudgetUsage{
			{
				Budget: entity.Budget{
					ID:         "b1",
					UserID:     "u1",
					BudgetName: "Groceries",
					Price:      decimal.NewFromInt(1000),
				},
				UsedAmount:      decimal.NewFromInt(300),
				MonthUsedAmount: decimal.NewFromInt(100),
			},
		},
		totalSaving: decimal.Zero,
	}
	svc := newTestReportService(store)

	res, err := svc.GetMonthlyReport(context.Background(), "u1", 2025, 5)
	require.NoError(t, err)

	require.Len(t, res.BudgetsWithUsedAmount, 1)
	b := res.BudgetsWithUsedAmount[0]
	assert.Equal(t, 300.0, b.UsedAmount, "usedAmount is lifetime spend")
	assert.Equal(t, 100.0, b.MonthUsedAmount)
	assert.Equal(t, 700.0, b.RemainingAmount)
	require.NotNil(t, b.PercentUsed)
	assert.Equal(t, 30.0, *b.PercentUsed)
	assert.Equal(t, 700.0, res.Summary[0].TotalRemainingAmount)
}

func TestGetMonthlyReport_Idempotent(t *testing.T) {
	store := &fakeReportStore{
		users: map[string]bool{"u1": true},
		incomes: []entity.Income{
			{ID: "i1", UserID: "u1", Amount: decimal.NewFromInt(500),
				CreatedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
		},
		goals: []entity.Goal{
			{ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(100),
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		totalSaving: decimal.NewFromInt(500),
	}
	svc := newTestReportService(store)

	first, err := svc.GetMonthlyReport(context.Background(), "u1", 2025, 5)
	require.NoError(t, err)
	second, err := svc.GetMonthlyReport(context.Background(), "u1", 2025, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetDashboard_SplitsGoals(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeReportStore{
		users: map[string]bool{"u1": true},
		goals: []entity.Goal{
			{ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(100), CreatedAt: now},
			{ID: "g2", UserID: "u1", Amount: decimal.NewFromInt(50), Completed: true, CreatedAt: now},
		},
		totalSaving: decimal.NewFromInt(75),
	}
	svc := newTestReportService(store)

	res, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, res.PendingGoals, 1)
	require.Len(t, res.CompletedGoals, 1)
	assert.Equal(t, "g1", res.PendingGoals[0].ID)
	assert.Equal(t, "g2", res.CompletedGoals[0].ID)
}

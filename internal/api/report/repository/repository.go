package reportRepository

import (
	"time"

	"finflow/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Reports:  &reportRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// BudgetUsage carries a budget row with its lifetime spend and the spend
// inside the requested report window, both summed at query time.
type BudgetUsage struct {
	Budget          entity.Budget
	UsedAmount      decimal.Decimal
	MonthUsedAmount decimal.Decimal
}

type Client struct {
	Reports interface {
		UserExists(ctx context.Context, userID string) (bool, error)
		GetIncomesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Income, error)
		GetExpensesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Expense, error)
		GetBudgetUsage(ctx context.Context, userID string, start, end time.Time) ([]BudgetUsage, error)
		GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error)
		GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error)
	}

	Commit   func() error
	Rollback func() error
}

type reportRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

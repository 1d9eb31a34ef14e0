package expenseRepository

import (
	"finflow/internal/entity"

	"github.com/jmoiron/sqlx"
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
		Expenses: &expenseRepository{q: sqlExecutor, log: r.log},
		Budgets:  &budgetLookupRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Expenses interface {
		CreateExpense(ctx context.Context, expense entity.Expense) error
		GetExpenseByID(ctx context.Context, id string) (entity.Expense, error)
		GetExpensesByUserID(ctx context.Context, userID string) ([]entity.Expense, error)
		UpdateExpense(ctx context.Context, expense entity.Expense) error
		DeleteExpense(ctx context.Context, id string) error
	}

	Budgets interface {
		GetBudgetOwner(ctx context.Context, budgetID string) (string, error)
	}

	Commit   func() error
	Rollback func() error
}

type expenseRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type budgetLookupRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

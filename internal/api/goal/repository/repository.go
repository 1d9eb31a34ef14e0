package goalRepository

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
		Goals:    &goalRepository{q: sqlExecutor, log: r.log},
		Wallets:  &walletDeductionRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// Client groups goal rows and the wallet deduction counter behind one
// executor so goal completion can touch both inside a single transaction.
type Client struct {
	Goals interface {
		CreateGoal(ctx context.Context, goal entity.Goal) error
		GetGoalByID(ctx context.Context, id string) (entity.Goal, error)
		GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error)
		UpdateGoal(ctx context.Context, goal entity.Goal) error
		DeleteGoal(ctx context.Context, id string) error
		MarkGoalCompleted(ctx context.Context, id string, completedAt time.Time) error
	}

	Wallets interface {
		GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error)
		IncrementTotalDeducted(ctx context.Context, userID string, amount decimal.Decimal) error
	}

	Commit   func() error
	Rollback func() error
}

type goalRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type walletDeductionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

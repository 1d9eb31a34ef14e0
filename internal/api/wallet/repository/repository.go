package walletRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Wallets:  &walletRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Wallets interface {
		CreateWallet(ctx context.Context, userID string) error
		// GetTotalSaving recomputes the all-time balance: lifetime income
		// minus lifetime expense minus the sum deducted by completed goals.
		GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error)
	}

	Commit   func() error
	Rollback func() error
}

type walletRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

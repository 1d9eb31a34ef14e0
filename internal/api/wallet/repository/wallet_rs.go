package walletRepository

import (
	"context"
	"time"

	"finflow/internal/api/wallet"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type walletTotalsDB struct {
	TotalSaving  decimal.Decimal `db:"total_saving"`
	WalletExists bool            `db:"wallet_exists"`
}

func (r *walletRepository) CreateWallet(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateWallet, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateWallet named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating wallet")
		return err
	}

	return nil
}

func (r *walletRepository) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var totals walletTotalsDB

	query, args, err := sqlx.Named(queryGetTotalSaving, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTotalSaving named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&totals); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTotalSaving execution err")
		return decimal.Zero, err
	}

	if !totals.WalletExists {
		return decimal.Zero, wallet.ErrWalletNotFound
	}

	return totals.TotalSaving, nil
}

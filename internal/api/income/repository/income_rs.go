package incomeRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"finflow/internal/api/income"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type IncomeDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *incomeRepository) CreateIncome(ctx context.Context, i entity.Income) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          i.ID,
		"user_id":     i.UserID,
		"title":       i.Title,
		"description": i.Description,
		"amount":      i.Amount,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateIncome named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating income")
		return err
	}

	return nil
}

func (r *incomeRepository) GetIncomeByID(ctx context.Context, id string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var i IncomeDB

	query, args, err := sqlx.Named(queryGetIncomeByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID named query preparation err")
		return entity.Income{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&i); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Income{}, income.ErrIncomeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeByID execution err")
		return entity.Income{}, err
	}

	return r.makeIncome(i), nil
}

func (r *incomeRepository) GetIncomesByUserID(ctx context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var incomes []IncomeDB

	query, args, err := sqlx.Named(queryGetIncomesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &incomes, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Income, 0, len(incomes))
	for _, i := range incomes {
		result = append(result, r.makeIncome(i))
	}

	return result, nil
}

func (r *incomeRepository) UpdateIncome(ctx context.Context, i entity.Income) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          i.ID,
		"title":       i.Title,
		"description": i.Description,
		"amount":      i.Amount,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) DeleteIncome(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteIncome, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteIncome execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteIncome no rows affected")
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) makeIncome(i IncomeDB) entity.Income {
	return entity.Income{
		ID:          i.ID.String,
		UserID:      i.UserID.String,
		Title:       i.Title.String,
		Description: i.Description.String,
		Amount:      i.Amount,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

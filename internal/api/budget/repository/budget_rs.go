package budgetRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"finflow/internal/api/budget"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID         sql.NullString      `db:"id"`
	UserID     sql.NullString      `db:"user_id"`
	BudgetName sql.NullString      `db:"budget_name"`
	Price      decimal.Decimal     `db:"price"`
	UsedAmount decimal.NullDecimal `db:"used_amount"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}

func (r *budgetRepository) CreateBudget(ctx context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          b.ID,
		"user_id":     b.UserID,
		"budget_name": b.BudgetName,
		"price":       b.Price,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBudget named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return err
	}

	return nil
}

func (r *budgetRepository) GetBudgetByID(ctx context.Context, id string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var b BudgetDB

	query, args, err := sqlx.Named(queryGetBudgetByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) GetBudgetsByUserID(ctx context.Context, userID string) ([]BudgetWithUsage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var budgets []BudgetDB

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID execution err")
		return nil, err
	}

	result := make([]BudgetWithUsage, 0, len(budgets))
	for _, b := range budgets {
		used := decimal.Zero
		if b.UsedAmount.Valid {
			used = b.UsedAmount.Decimal
		}
		result = append(result, BudgetWithUsage{
			Budget:     r.makeBudget(b),
			UsedAmount: used,
		})
	}

	return result, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          b.ID,
		"budget_name": b.BudgetName,
		"price":       b.Price,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateBudget no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBudget, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteBudget no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) entity.Budget {
	return entity.Budget{
		ID:         b.ID.String,
		UserID:     b.UserID.String,
		BudgetName: b.BudgetName.String,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"finflow/internal/api/expense"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ExpenseDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	BudgetID    sql.NullString  `db:"budget_id"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	ReceiptURL  sql.NullString  `db:"receipt_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(ctx context.Context, e entity.Expense) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          e.ID,
		"user_id":     e.UserID,
		"budget_id":   e.BudgetID,
		"title":       e.Title,
		"description": e.Description,
		"amount":      e.Amount,
		"receipt_url": e.ReceiptURL,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateExpense named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var e ExpenseDB

	query, args, err := sqlx.Named(queryGetExpenseByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID named query preparation err")
		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpenseByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(e), nil
}

func (r *expenseRepository) GetExpensesByUserID(ctx context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var expenses []ExpenseDB

	query, args, err := sqlx.Named(queryGetExpensesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &expenses, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, r.makeExpense(e))
	}

	return result, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, e entity.Expense) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          e.ID,
		"budget_id":   e.BudgetID,
		"title":       e.Title,
		"description": e.Description,
		"amount":      e.Amount,
		"receipt_url": e.ReceiptURL,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteExpense, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteExpense no rows affected")
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) makeExpense(e ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:          e.ID.String,
		UserID:      e.UserID.String,
		BudgetID:    e.BudgetID.String,
		Title:       e.Title.String,
		Description: e.Description.String,
		Amount:      e.Amount,
		ReceiptURL:  e.ReceiptURL.String,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *budgetLookupRepository) GetBudgetOwner(ctx context.Context, budgetID string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var owner sql.NullString

	query, args, err := sqlx.Named(queryGetBudgetOwner, map[string]interface{}{"id": budgetID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetOwner named query preparation err")
		return "", err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", expense.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetOwner execution err")
		return "", err
	}

	return owner.String, nil
}

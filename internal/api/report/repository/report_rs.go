package reportRepository

import (
	"context"
	"database/sql"
	"time"

	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type incomeDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type expenseDB struct {
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

type budgetUsageDB struct {
	ID              sql.NullString  `db:"id"`
	UserID          sql.NullString  `db:"user_id"`
	BudgetName      sql.NullString  `db:"budget_name"`
	Price           decimal.Decimal `db:"price"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	UsedAmount      decimal.Decimal `db:"used_amount"`
	MonthUsedAmount decimal.Decimal `db:"month_used_amount"`
}

type goalDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Completed   bool            `db:"completed"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt sql.NullTime    `db:"completed_at"`
}

func (r *reportRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var exists bool

	query, args, err := sqlx.Named(queryUserExists, map[string]interface{}{"id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UserExists named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UserExists execution err")
		return false, err
	}

	return exists, nil
}

func (r *reportRepository) GetIncomesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []incomeDB

	query, args, err := sqlx.Named(queryGetIncomesInWindow, map[string]interface{}{
		"user_id":      userID,
		"window_start": start,
		"window_end":   end,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesInWindow named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomesInWindow execution err")
		return nil, err
	}

	result := make([]entity.Income, 0, len(rows))
	for _, i := range rows {
		result = append(result, entity.Income{
			ID:          i.ID.String,
			UserID:      i.UserID.String,
			Title:       i.Title.String,
			Description: i.Description.String,
			Amount:      i.Amount,
			CreatedAt:   i.CreatedAt,
			UpdatedAt:   i.UpdatedAt,
		})
	}

	return result, nil
}

func (r *reportRepository) GetExpensesInWindow(ctx context.Context, userID string, start, end time.Time) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []expenseDB

	query, args, err := sqlx.Named(queryGetExpensesInWindow, map[string]interface{}{
		"user_id":      userID,
		"window_start": start,
		"window_end":   end,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesInWindow named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesInWindow execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(rows))
	for _, e := range rows {
		result = append(result, entity.Expense{
			ID:          e.ID.String,
			UserID:      e.UserID.String,
			BudgetID:    e.BudgetID.String,
			Title:       e.Title.String,
			Description: e.Description.String,
			Amount:      e.Amount,
			ReceiptURL:  e.ReceiptURL.String,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}

	return result, nil
}

func (r *reportRepository) GetBudgetUsage(ctx context.Context, userID string, start, end time.Time) ([]BudgetUsage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []budgetUsageDB

	query, args, err := sqlx.Named(queryGetBudgetUsage, map[string]interface{}{
		"user_id":      userID,
		"window_start": start,
		"window_end":   end,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetUsage named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetUsage execution err")
		return nil, err
	}

	result := make([]BudgetUsage, 0, len(rows))
	for _, b := range rows {
		result = append(result, BudgetUsage{
			Budget: entity.Budget{
				ID:         b.ID.String,
				UserID:     b.UserID.String,
				BudgetName: b.BudgetName.String,
				Price:      b.Price,
				CreatedAt:  b.CreatedAt,
				UpdatedAt:  b.UpdatedAt,
			},
			UsedAmount:      b.UsedAmount,
			MonthUsedAmount: b.MonthUsedAmount,
		})
	}

	return result, nil
}

func (r *reportRepository) GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []goalDB

	query, args, err := sqlx.Named(queryGetGoalsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Goal, 0, len(rows))
	for _, g := range rows {
		var completedAt *time.Time
		if g.CompletedAt.Valid {
			t := g.CompletedAt.Time
			completedAt = &t
		}

		result = append(result, entity.Goal{
			ID:          g.ID.String,
			UserID:      g.UserID.String,
			Title:       g.Title.String,
			Description: g.Description.String,
			Amount:      g.Amount,
			Completed:   g.Completed,
			CreatedAt:   g.CreatedAt,
			CompletedAt: completedAt,
		})
	}

	return result, nil
}

func (r *reportRepository) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var totalSaving decimal.Decimal

	query, args, err := sqlx.Named(queryGetTotalSaving, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTotalSaving named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&totalSaving); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTotalSaving execution err")
		return decimal.Zero, err
	}

	return totalSaving, nil
}

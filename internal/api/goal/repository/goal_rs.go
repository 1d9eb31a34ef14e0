package goalRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"finflow/internal/api/goal"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GoalDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Completed   bool            `db:"completed"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt sql.NullTime    `db:"completed_at"`
}

func (r *goalRepository) CreateGoal(ctx context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          g.ID,
		"user_id":     g.UserID,
		"title":       g.Title,
		"description": g.Description,
		"amount":      g.Amount,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateGoal named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating goal")
		return err
	}

	return nil
}

func (r *goalRepository) GetGoalByID(ctx context.Context, id string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var g GoalDB

	query, args, err := sqlx.Named(queryGetGoalByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalByID named query preparation err")
		return entity.Goal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Goal{}, goal.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalByID execution err")
		return entity.Goal{}, err
	}

	return r.makeGoal(g), nil
}

func (r *goalRepository) GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var goals []GoalDB

	query, args, err := sqlx.Named(queryGetGoalsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &goals, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetGoalsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		result = append(result, r.makeGoal(g))
	}

	return result, nil
}

func (r *goalRepository) UpdateGoal(ctx context.Context, g entity.Goal) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          g.ID,
		"title":       g.Title,
		"description": g.Description,
		"amount":      g.Amount,
	}

	query, args, err := sqlx.Named(queryUpdateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateGoal no rows affected")
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteGoal, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteGoal no rows affected")
		return goal.ErrGoalNotFound
	}

	return nil
}

// MarkGoalCompleted flips the completion flag exactly once. A second call on
// the same goal affects zero rows and reports the goal as already completed.
func (r *goalRepository) MarkGoalCompleted(ctx context.Context, id string, completedAt time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           id,
		"completed_at": completedAt,
	}

	query, args, err := sqlx.Named(queryMarkGoalCompleted, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkGoalCompleted named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkGoalCompleted execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("MarkGoalCompleted no rows affected")
		return goal.ErrGoalCompleted
	}

	return nil
}

func (r *goalRepository) makeGoal(g GoalDB) entity.Goal {
	var completedAt *time.Time
	if g.CompletedAt.Valid {
		t := g.CompletedAt.Time
		completedAt = &t
	}

	return entity.Goal{
		ID:          g.ID.String,
		UserID:      g.UserID.String,
		Title:       g.Title.String,
		Description: g.Description.String,
		Amount:      g.Amount,
		Completed:   g.Completed,
		CreatedAt:   g.CreatedAt,
		CompletedAt: completedAt,
	}
}

func (r *walletDeductionRepository) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
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

func (r *walletDeductionRepository) IncrementTotalDeducted(ctx context.Context, userID string, amount decimal.Decimal) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":    userID,
		"amount":     amount,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryIncrementTotalDeducted, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementTotalDeducted named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementTotalDeducted execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("IncrementTotalDeducted no wallet row for user")
		return errors.New("wallet not found for user")
	}

	return nil
}

package goalService

import (
	"time"

	"finflow/internal/api/goal"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"
	"finflow/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *goalService) CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return goal.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	g := entity.Goal{
		ID:          id,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
	}

	if err := repo.Goals.CreateGoal(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create goal")
		return goal.ErrCreateGoal
	}

	return nil
}

func (s *goalService) GetGoalsByUserID(ctx context.Context, userID string) ([]goal.GoalResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	goals, err := repo.Goals.GetGoalsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get goals by user ID")
		return nil, err
	}

	walletRepo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create wallet client")
		return nil, err
	}

	currentSaving, err := walletRepo.Wallets.GetTotalSaving(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get total saving")
		return nil, err
	}

	responses := make([]goal.GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, s.makeGoalResponse(g, currentSaving))
	}

	return responses, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Goals.GetGoalByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing goal")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existing.UserID,
			"request_user_id": req.UserID,
		}).Warn("Goal does not belong to user")
		return goal.ErrGoalNotOwned
	}

	if existing.Completed {
		return goal.ErrGoalCompleted
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return goal.ErrInvalidAmount
	}

	g := entity.Goal{
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
	}

	if err := repo.Goals.UpdateGoal(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update goal")
		return goal.ErrUpdateGoal
	}

	return nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Goals.GetGoalByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing goal")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existing.UserID,
			"request_user_id": userID,
		}).Warn("Goal does not belong to user")
		return goal.ErrGoalNotOwned
	}

	if err := repo.Goals.DeleteGoal(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete goal")
		return goal.ErrDeleteGoal
	}

	return nil
}

// CompleteGoal marks the goal complete and moves its amount into the wallet
// deduction counter. The funding check and both writes share one transaction
// so a goal can never deduct more than the saving balance covers.
func (s *goalService) CompleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Goals.GetGoalByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing goal")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"goal_user_id":    existing.UserID,
			"request_user_id": userID,
		}).Warn("Goal does not belong to user")
		return goal.ErrGoalNotOwned
	}

	if existing.Completed {
		return goal.ErrGoalCompleted
	}

	currentSaving, err := repo.Wallets.GetTotalSaving(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get total saving")
		return err
	}

	if currentSaving.LessThan(existing.Amount) {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"goal_id":        id,
			"goal_amount":    existing.Amount.String(),
			"current_saving": currentSaving.String(),
		}).Warn("Goal amount exceeds current saving")
		return goal.ErrGoalNotFunded
	}

	if err := repo.Goals.MarkGoalCompleted(ctx, id, time.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark goal completed")
		return err
	}

	if err := repo.Wallets.IncrementTotalDeducted(ctx, userID, existing.Amount); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to increment wallet deduction")
		return goal.ErrCompleteGoal
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return goal.ErrCompleteGoal
	}

	return nil
}

func (s *goalService) makeGoalResponse(g entity.Goal, currentSaving decimal.Decimal) goal.GoalResponse {
	var completedAt *string
	if g.CompletedAt != nil {
		formatted := g.CompletedAt.Format(time.RFC3339)
		completedAt = &formatted
	}

	progress := 1.0
	if !g.Completed {
		progress = g.Progress(currentSaving)
	}

	return goal.GoalResponse{
		ID:          g.ID,
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		Amount:      money.ToFloat(g.Amount),
		Completed:   g.Completed,
		CompletedAt: completedAt,
		Progress:    progress,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
	}
}

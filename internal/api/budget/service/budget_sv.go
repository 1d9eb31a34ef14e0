package budgetService

import (
	"time"

	"finflow/internal/api/budget"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"
	"finflow/pkg/money"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	price := money.FromFloat(req.Price)
	if !price.IsPositive() {
		return budget.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	b := entity.Budget{
		ID:         id,
		UserID:     req.UserID,
		BudgetName: req.BudgetName,
		Price:      price,
	}

	if err := repo.Budgets.CreateBudget(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return budget.ErrCreateBudget
	}

	return nil
}

func (s *budgetService) GetBudgetsByUserID(ctx context.Context, userID string) ([]budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	budgets, err := repo.Budgets.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get budgets by user ID")
		return nil, err
	}

	responses := make([]budget.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		remaining := b.Budget.Price.Sub(b.UsedAmount)
		responses = append(responses, budget.BudgetResponse{
			ID:              b.Budget.ID,
			UserID:          b.Budget.UserID,
			BudgetName:      b.Budget.BudgetName,
			Price:           money.ToFloat(b.Budget.Price),
			UsedAmount:      money.ToFloat(b.UsedAmount),
			RemainingAmount: money.ToFloat(remaining),
			PercentUsed:     money.PercentUsed(b.UsedAmount, b.Budget.Price),
			CreatedAt:       b.Budget.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Budgets.GetBudgetByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing budget")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"budget_user_id":  existing.UserID,
			"request_user_id": req.UserID,
		}).Warn("Budget does not belong to user")
		return budget.ErrBudgetNotOwned
	}

	price := money.FromFloat(req.Price)
	if !price.IsPositive() {
		return budget.ErrInvalidAmount
	}

	b := entity.Budget{
		ID:         req.ID,
		UserID:     req.UserID,
		BudgetName: req.BudgetName,
		Price:      price,
	}

	if err := repo.Budgets.UpdateBudget(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return budget.ErrUpdateBudget
	}

	return nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Budgets.GetBudgetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing budget")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"budget_user_id":  existing.UserID,
			"request_user_id": userID,
		}).Warn("Budget does not belong to user")
		return budget.ErrBudgetNotOwned
	}

	if err := repo.Budgets.DeleteBudget(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete budget")
		return budget.ErrDeleteBudget
	}

	return nil
}

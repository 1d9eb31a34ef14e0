package incomeService

import (
	"time"

	"finflow/internal/api/income"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"
	"finflow/pkg/money"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *incomeService) CreateIncome(ctx context.Context, req income.CreateIncomeRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return income.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	i := entity.Income{
		ID:          id,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
	}

	if err := repo.Incomes.CreateIncome(ctx, i); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create income")
		return income.ErrCreateIncome
	}

	return nil
}

func (s *incomeService) GetIncomesByUserID(ctx context.Context, userID string) ([]income.IncomeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	incomes, err := repo.Incomes.GetIncomesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get incomes by user ID")
		return nil, err
	}

	responses := make([]income.IncomeResponse, 0, len(incomes))
	for _, i := range incomes {
		responses = append(responses, income.IncomeResponse{
			ID:          i.ID,
			UserID:      i.UserID,
			Title:       i.Title,
			Description: i.Description,
			Amount:      money.ToFloat(i.Amount),
			CreatedAt:   i.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Incomes.GetIncomeByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing income")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"income_user_id":  existing.UserID,
			"request_user_id": req.UserID,
		}).Warn("Income does not belong to user")
		return income.ErrIncomeNotOwned
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return income.ErrInvalidAmount
	}

	i := entity.Income{
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
	}

	if err := repo.Incomes.UpdateIncome(ctx, i); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update income")
		return income.ErrUpdateIncome
	}

	return nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Incomes.GetIncomeByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing income")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"income_user_id":  existing.UserID,
			"request_user_id": userID,
		}).Warn("Income does not belong to user")
		return income.ErrIncomeNotOwned
	}

	if err := repo.Incomes.DeleteIncome(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete income")
		return income.ErrDeleteIncome
	}

	return nil
}

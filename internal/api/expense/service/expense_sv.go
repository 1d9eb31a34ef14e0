package expenseService

import (
	"mime/multipart"
	"time"

	"finflow/internal/api/expense"
	expenseRepository "finflow/internal/api/expense/repository"
	"finflow/internal/entity"
	contextPkg "finflow/pkg/context"
	"finflow/pkg/money"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest, receiptFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return expense.ErrInvalidAmount
	}

	budgetID := req.BudgetID
	if budgetID == "" {
		budgetID = entity.BudgetIDOther
	}

	if err := s.checkBudgetOwnership(ctx, repo, budgetID, req.UserID); err != nil {
		return err
	}

	var receiptURL string
	if receiptFile != nil {
		if err := s.utils.ValidateImageFile(receiptFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid receipt file")
			return err
		}

		uploadedURL, err := s.s3Client.UploadReceipt(receiptFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt")
			return expense.ErrFailedToUpload
		}

		receiptURL = uploadedURL
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	e := entity.Expense{
		ID:          id,
		UserID:      req.UserID,
		BudgetID:    budgetID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
		ReceiptURL:  receiptURL,
	}

	if err := repo.Expenses.CreateExpense(ctx, e); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return expense.ErrCreateExpense
	}

	return nil
}

func (s *expenseService) GetExpensesByUserID(ctx context.Context, userID string) ([]expense.ExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	expenses, err := repo.Expenses.GetExpensesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get expenses by user ID")
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		receiptURL := e.ReceiptURL
		if receiptURL != "" {
			presigned, err := s.s3Client.PresignURL(receiptURL)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"expense_id": e.ID,
					"error":      err.Error(),
				}).Warn("Failed to presign receipt URL")
			} else {
				receiptURL = presigned
			}
		}

		responses = append(responses, expense.ExpenseResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			BudgetID:    e.BudgetID,
			Title:       e.Title,
			Description: e.Description,
			Amount:      money.ToFloat(e.Amount),
			ReceiptURL:  receiptURL,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest, receiptFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expenses.GetExpenseByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing expense")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"request_user_id": req.UserID,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotOwned
	}

	amount := money.FromFloat(req.Amount)
	if !amount.IsPositive() {
		return expense.ErrInvalidAmount
	}

	budgetID := req.BudgetID
	if budgetID == "" {
		budgetID = entity.BudgetIDOther
	}

	if err := s.checkBudgetOwnership(ctx, repo, budgetID, req.UserID); err != nil {
		return err
	}

	receiptURL := existing.ReceiptURL
	if receiptFile != nil {
		if err := s.utils.ValidateImageFile(receiptFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid receipt file")
			return err
		}

		uploadedURL, err := s.s3Client.UploadReceipt(receiptFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt")
			return expense.ErrFailedToUpload
		}

		if existing.ReceiptURL != "" {
			if err := s.s3Client.DeleteReceipt(existing.ReceiptURL); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to delete old receipt")
			}
		}

		receiptURL = uploadedURL
	}

	e := entity.Expense{
		ID:          req.ID,
		UserID:      req.UserID,
		BudgetID:    budgetID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      amount,
		ReceiptURL:  receiptURL,
	}

	if err := repo.Expenses.UpdateExpense(ctx, e); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update expense")
		return expense.ErrUpdateExpense
	}

	return nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Expenses.GetExpenseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing expense")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"request_user_id": userID,
		}).Warn("Expense does not belong to user")
		return expense.ErrExpenseNotOwned
	}

	if err := repo.Expenses.DeleteExpense(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return expense.ErrDeleteExpense
	}

	if existing.ReceiptURL != "" {
		if err := s.s3Client.DeleteReceipt(existing.ReceiptURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete receipt file")
		}
	}

	return nil
}

// checkBudgetOwnership validates that the referenced budget exists and belongs
// to the user. The sentinel budget ID skips the lookup.
func (s *expenseService) checkBudgetOwnership(ctx context.Context, repo expenseRepository.Client, budgetID string, userID string) error {
	if budgetID == entity.BudgetIDOther {
		return nil
	}

	owner, err := repo.Budgets.GetBudgetOwner(ctx, budgetID)
	if err != nil {
		return err
	}

	if owner != userID {
		return expense.ErrBudgetNotOwned
	}

	return nil
}

package expenseService

import (
	"mime/multipart"

	"finflow/internal/api/expense"
	expenseRepository "finflow/internal/api/expense/repository"
	"finflow/pkg/s3"
	"finflow/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest, receiptFile *multipart.FileHeader) error
	GetExpensesByUserID(ctx context.Context, userID string) ([]expense.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest, receiptFile *multipart.FileHeader) error
	DeleteExpense(ctx context.Context, id string, userID string) error
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	s3Client          s3.ItfS3
	utils             utils.IUtils
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository, s3Client s3.ItfS3, utils utils.IUtils) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		s3Client:          s3Client,
		utils:             utils,
	}
}

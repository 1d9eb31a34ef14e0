package budgetService

import (
	"finflow/internal/api/budget"
	budgetRepository "finflow/internal/api/budget/repository"
	"finflow/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) error
	GetBudgetsByUserID(ctx context.Context, userID string) ([]budget.BudgetResponse, error)
	UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) error
	DeleteBudget(ctx context.Context, id string, userID string) error
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
	}
}

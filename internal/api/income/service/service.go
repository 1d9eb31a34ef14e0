package incomeService

import (
	"finflow/internal/api/income"
	incomeRepository "finflow/internal/api/income/repository"
	"finflow/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IIncomeService interface {
	CreateIncome(ctx context.Context, req income.CreateIncomeRequest) error
	GetIncomesByUserID(ctx context.Context, userID string) ([]income.IncomeResponse, error)
	UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) error
	DeleteIncome(ctx context.Context, id string, userID string) error
}

type incomeService struct {
	log              *logrus.Logger
	incomeRepository incomeRepository.Repository
	utils            utils.IUtils
}

func NewIncomeService(log *logrus.Logger, ir incomeRepository.Repository, utils utils.IUtils) IIncomeService {
	return &incomeService{
		log:              log,
		incomeRepository: ir,
		utils:            utils,
	}
}

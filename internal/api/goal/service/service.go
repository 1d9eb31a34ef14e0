package goalService

import (
	"finflow/internal/api/goal"
	goalRepository "finflow/internal/api/goal/repository"
	walletRepository "finflow/internal/api/wallet/repository"
	"finflow/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IGoalService interface {
	CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error
	GetGoalsByUserID(ctx context.Context, userID string) ([]goal.GoalResponse, error)
	UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error
	DeleteGoal(ctx context.Context, id string, userID string) error
	CompleteGoal(ctx context.Context, id string, userID string) error
}

type goalService struct {
	log              *logrus.Logger
	goalRepository   goalRepository.Repository
	walletRepository walletRepository.Repository
	utils            utils.IUtils
}

func NewGoalService(log *logrus.Logger, gr goalRepository.Repository, wr walletRepository.Repository, utils utils.IUtils) IGoalService {
	return &goalService{
		log:              log,
		goalRepository:   gr,
		walletRepository: wr,
		utils:            utils,
	}
}

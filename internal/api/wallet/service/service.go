package walletService

import (
	"finflow/internal/api/wallet"
	walletRepository "finflow/internal/api/wallet/repository"
	contextPkg "finflow/pkg/context"
	"finflow/pkg/money"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IWalletService interface {
	GetWalletByUserID(ctx context.Context, userID string) (wallet.WalletResponse, error)
}

type walletService struct {
	log              *logrus.Logger
	walletRepository walletRepository.Repository
}

func NewWalletService(log *logrus.Logger, wr walletRepository.Repository) IWalletService {
	return &walletService{
		log:              log,
		walletRepository: wr,
	}
}

func (s *walletService) GetWalletByUserID(ctx context.Context, userID string) (wallet.WalletResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.walletRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return wallet.WalletResponse{}, err
	}

	totalSaving, err := repo.Wallets.GetTotalSaving(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to compute total saving")
		return wallet.WalletResponse{}, err
	}

	return wallet.WalletResponse{
		UserID:      userID,
		TotalSaving: money.ToFloat(totalSaving),
	}, nil
}

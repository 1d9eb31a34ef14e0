package authService

import (
	"finflow/internal/api/auth"
	authRepository "finflow/internal/api/auth/repository"
	walletRepository "finflow/internal/api/wallet/repository"
	"finflow/pkg/bcrypt"
	"finflow/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) error
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type authService struct {
	log              *logrus.Logger
	authRepository   authRepository.Repository
	walletRepository walletRepository.Repository
	bcryptUtils      bcrypt.IBcrypt
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	ar authRepository.Repository,
	wr walletRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:              log,
		authRepository:   ar,
		walletRepository: wr,
		bcryptUtils:      bcryptUtils,
		utils:            utils,
	}
}

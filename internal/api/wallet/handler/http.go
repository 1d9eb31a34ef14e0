package walletHandler

import (
	walletService "finflow/internal/api/wallet/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WalletHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	walletService walletService.IWalletService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	walletService walletService.IWalletService,
) *WalletHandler {
	return &WalletHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		walletService: walletService,
	}
}

func (h *WalletHandler) Start(srv fiber.Router) {
	wallet := srv.Group("/wallet")

	wallet.Get("/user/:userId", h.middleware.NewTokenMiddleware, h.GetWalletByUserID)
}

package incomeHandler

import (
	incomeService "finflow/internal/api/income/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type IncomeHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	incomeService incomeService.IIncomeService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	incomeService incomeService.IIncomeService,
) *IncomeHandler {
	return &IncomeHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		incomeService: incomeService,
	}
}

func (h *IncomeHandler) Start(srv fiber.Router) {
	income := srv.Group("/income")

	income.Get("/user/:userId", h.middleware.NewTokenMiddleware, h.GetIncomesByUserID)
	income.Post("", h.middleware.NewTokenMiddleware, h.CreateIncome)
	income.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateIncome)
	income.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteIncome)
}

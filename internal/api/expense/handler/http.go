package expenseHandler

import (
	expenseService "finflow/internal/api/expense/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.IExpenseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	expenseService expenseService.IExpenseService,
) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		expenseService: expenseService,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expense := srv.Group("/expense")

	expense.Get("/user/:userId", h.middleware.NewTokenMiddleware, h.GetExpensesByUserID)
	expense.Post("", h.middleware.NewTokenMiddleware, h.CreateExpense)
	expense.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateExpense)
	expense.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteExpense)
}

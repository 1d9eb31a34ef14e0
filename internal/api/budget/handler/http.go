package budgetHandler

import (
	budgetService "finflow/internal/api/budget/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budget := srv.Group("/budget")

	budget.Get("/user/:userId", h.middleware.NewTokenMiddleware, h.GetBudgetsByUserID)
	// Empty path so the route resolves at /api/budget under strict routing.
	budget.Post("", h.middleware.NewTokenMiddleware, h.CreateBudget)
	budget.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBudget)
	budget.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBudget)
}

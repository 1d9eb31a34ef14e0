package goalHandler

import (
	goalService "finflow/internal/api/goal/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	goalService goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	goal := srv.Group("/goal")

	goal.Get("/user/:userId", h.middleware.NewTokenMiddleware, h.GetGoalsByUserID)
	goal.Post("", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goal.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goal.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
	goal.Post("/goal-completed/:id", h.middleware.NewTokenMiddleware, h.CompleteGoal)
}

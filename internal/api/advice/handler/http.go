package adviceHandler

import (
	adviceService "finflow/internal/api/advice/service"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdviceHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	adviceService adviceService.IAdviceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	adviceService adviceService.IAdviceService,
) *AdviceHandler {
	return &AdviceHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		adviceService: adviceService,
	}
}

func (h *AdviceHandler) Start(srv fiber.Router) {
	advice := srv.Group("/advice")

	// Empty path so the route resolves at /api/advice under strict routing.
	advice.Post("", h.middleware.NewTokenMiddleware, h.GetAdvice)
	advice.Get("/latest", h.middleware.NewTokenMiddleware, h.GetLatestAdvice)
}

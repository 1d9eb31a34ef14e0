package config

import (
	"fmt"
	"os"

	"finflow/database/postgres"
	adviceHandler "finflow/internal/api/advice/handler"
	adviceService "finflow/internal/api/advice/service"
	authHandler "finflow/internal/api/auth/handler"
	authRepository "finflow/internal/api/auth/repository"
	authService "finflow/internal/api/auth/service"
	budgetHandler "finflow/internal/api/budget/handler"
	budgetRepository "finflow/internal/api/budget/repository"
	budgetService "finflow/internal/api/budget/service"
	expenseHandler "finflow/internal/api/expense/handler"
	expenseRepository "finflow/internal/api/expense/repository"
	expenseService "finflow/internal/api/expense/service"
	goalHandler "finflow/internal/api/goal/handler"
	goalRepository "finflow/internal/api/goal/repository"
	goalService "finflow/internal/api/goal/service"
	incomeHandler "finflow/internal/api/income/handler"
	incomeRepository "finflow/internal/api/income/repository"
	incomeService "finflow/internal/api/income/service"
	reportHandler "finflow/internal/api/report/handler"
	reportRepository "finflow/internal/api/report/repository"
	reportService "finflow/internal/api/report/service"
	walletHandler "finflow/internal/api/wallet/handler"
	walletRepository "finflow/internal/api/wallet/repository"
	walletService "finflow/internal/api/wallet/service"
	"finflow/internal/middleware"
	"finflow/pkg/bcrypt"
	openaiPkg "finflow/pkg/openai"
	"finflow/pkg/redis"
	"finflow/pkg/s3"
	"finflow/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	bcryptUtils      bcrypt.IBcrypt
	handlers         []handler
	redisServer      redis.IRedis
	completionClient openaiPkg.ICompletion
	s3Client         s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithCompletionClient() ServerOption {
	return func(s *Server) error {
		client, err := openaiPkg.NewCompletionClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create completion client: %v", err)
			}
			return fmt.Errorf("failed to create completion client: %w", err)
		}
		s.completionClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	walletRepo := walletRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, walletRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Budget / Income / Expense CRUD
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	incomeRepo := incomeRepository.New(s.db, s.log)
	incomeServices := incomeService.NewIncomeService(s.log, incomeRepo, s.utils)
	incomeHandlers := incomeHandler.New(s.log, s.validator, s.middleware, incomeServices)

	expenseRepo := expenseRepository.New(s.db, s.log)
	expenseServices := expenseService.NewExpenseService(s.log, expenseRepo, s.s3Client, s.utils)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	// Goals & Wallet
	walletServices := walletService.NewWalletService(s.log, walletRepo)
	walletHandlers := walletHandler.New(s.log, s.validator, s.middleware, walletServices)

	goalRepo := goalRepository.New(s.db, s.log)
	goalServices := goalService.NewGoalService(s.log, goalRepo, walletRepo, s.utils)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)

	// Reports & Dashboard
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.NewReportService(s.log, reportRepo)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	// Advice
	adviceServices := adviceService.NewAdviceService(s.log, s.completionClient, s.redisServer)
	adviceHandlers := adviceHandler.New(s.log, s.validator, s.middleware, adviceServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		budgetHandlers,
		incomeHandlers,
		expenseHandlers,
		goalHandlers,
		walletHandlers,
		reportHandlers,
		adviceHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

package adviceService

import (
	"time"

	"finflow/internal/api/advice"
	openaiPkg "finflow/pkg/openai"
	"finflow/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second
	cacheTTL    = 24 * time.Hour
)

type IAdviceService interface {
	GetAdvice(ctx context.Context, userID string, req advice.AdviceRequest) (advice.AdviceResponse, error)
	GetLatestAdvice(ctx context.Context, userID string) (advice.AdviceResponse, error)
}

type adviceService struct {
	log              *logrus.Logger
	completionClient openaiPkg.ICompletion
	redisServer      redis.IRedis

	attempts int
	delay    time.Duration
}

func NewAdviceService(log *logrus.Logger, completionClient openaiPkg.ICompletion, redisServer redis.IRedis) IAdviceService {
	return &adviceService{
		log:              log,
		completionClient: completionClient,
		redisServer:      redisServer,
		attempts:         maxAttempts,
		delay:            retryDelay,
	}
}

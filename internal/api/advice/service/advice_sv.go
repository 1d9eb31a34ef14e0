package adviceService

import (
	"errors"
	"time"

	"finflow/internal/api/advice"
	contextPkg "finflow/pkg/context"
	openaiPkg "finflow/pkg/openai"
	"finflow/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *adviceService) GetAdvice(ctx context.Context, userID string, req advice.AdviceRequest) (advice.AdviceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	prompt := advice.BuildPrompt(req)

	text, err := s.completeWithRetry(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to generate advice")
		return advice.AdviceResponse{}, err
	}

	formatted := advice.FormatAdvice(text)

	// Cache failures never fail the request; the advice is already generated.
	if err := s.redisServer.SetLatestAdvice(ctx, userID, formatted, cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to cache advice")
	}

	return advice.AdviceResponse{Advice: formatted}, nil
}

// completeWithRetry wraps the completion call in a bounded retry loop: a
// fixed delay between attempts, rate-limit responses retried, anything else
// returned immediately.
func (s *adviceService) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	for attempt := 1; attempt <= s.attempts; attempt++ {
		text, err := s.completionClient.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}

		if !errors.Is(err, openaiPkg.ErrRateLimited) {
			return "", err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"attempt":    attempt,
			"delay_ms":   s.delay.Milliseconds(),
		}).Warn("Advice API rate limited, retrying")

		if attempt == s.attempts {
			break
		}

		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", advice.ErrRateLimitExceeded
}

func (s *adviceService) GetLatestAdvice(ctx context.Context, userID string) (advice.AdviceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text, err := s.redisServer.GetLatestAdvice(ctx, userID)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return advice.AdviceResponse{}, advice.ErrAdviceNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to read cached advice")
		return advice.AdviceResponse{}, err
	}

	return advice.AdviceResponse{Advice: text}, nil
}

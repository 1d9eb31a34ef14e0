package adviceService

import (
	"errors"
	"testing"
	"time"

	"finflow/internal/api/advice"
	openaiPkg "finflow/pkg/openai"
	"finflow/pkg/redis"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type scriptedCompletion struct {
	responses []error
	text      string
	calls     []time.Time
}

func (s *scriptedCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls = append(s.calls, time.Now())
	idx := len(s.calls) - 1
	if idx < len(s.responses) && s.responses[idx] != nil {
		return "", s.responses[idx]
	}
	return s.text, nil
}

type fakeRedis struct {
	stored map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{stored: make(map[string]string)}
}

func (f *fakeRedis) SetLatestAdvice(ctx context.Context, userID string, advice string, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored[userID] = advice
	return nil
}

func (f *fakeRedis) GetLatestAdvice(ctx context.Context, userID string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.stored[userID]
	if !ok {
		return "", redis.ErrNotFound
	}
	return val, nil
}

func newTestService(completion *scriptedCompletion, cache *fakeRedis, delay time.Duration) *adviceService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &adviceService{
		log:              log,
		completionClient: completion,
		redisServer:      cache,
		attempts:         3,
		delay:            delay,
	}
}

func TestGetAdvice_RetriesThenSucceeds(t *testing.T) {
	delay := 20 * time.Millisecond
	completion := &scriptedCompletion{
		responses: []error{openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited, nil},
		text:      "spend less",
	}
	svc := newTestService(completion, newFakeRedis(), delay)

	res, err := svc.GetAdvice(context.Background(), "user-1", advice.AdviceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "spend less", res.Advice)
	require.Len(t, completion.calls, 3)

	for i := 1; i < len(completion.calls); i++ {
		gap := completion.calls[i].Sub(completion.calls[i-1])
		assert.GreaterOrEqual(t, gap, delay, "attempts must be separated by the retry delay")
	}
}

func TestGetAdvice_ExhaustsRetries(t *testing.T) {
	completion := &scriptedCompletion{
		responses: []error{openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited},
	}
	svc := newTestService(completion, newFakeRedis(), time.Millisecond)

	_, err := svc.GetAdvice(context.Background(), "user-1", advice.AdviceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, advice.ErrRateLimitExceeded)
	assert.Len(t, completion.calls, 3, "no fourth attempt after exhaustion")
}

func TestGetAdvice_NonRateLimitFailsImmediately(t *testing.T) {
	upstreamErr := errors.New("completion API error: upstream 500")
	completion := &scriptedCompletion{
		responses: []error{upstreamErr},
	}
	svc := newTestService(completion, newFakeRedis(), time.Millisecond)

	_, err := svc.GetAdvice(context.Background(), "user-1", advice.AdviceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Len(t, completion.calls, 1, "non-429 errors are never retried")
}

func TestGetAdvice_AbortsOnContextCancel(t *testing.T) {
	completion := &scriptedCompletion{
		responses: []error{openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited, openaiPkg.ErrRateLimited},
	}
	svc := newTestService(completion, newFakeRedis(), time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.GetAdvice(ctx, "user-1", advice.AdviceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, completion.calls, 1, "retry wait must honor cancellation")
}

func TestGetAdvice_CachesFormattedAdvice(t *testing.T) {
	completion := &scriptedCompletion{text: "1. Expense & Income Analysis: ok"}
	cache := newFakeRedis()
	svc := newTestService(completion, cache, time.Millisecond)

	res, err := svc.GetAdvice(context.Background(), "user-1", advice.AdviceRequest{})
	require.NoError(t, err)
	assert.Equal(t, res.Advice, cache.stored["user-1"])
	assert.Contains(t, res.Advice, "\n\n1. Expense & Income Analysis:\n")
}

func TestGetAdvice_CacheFailureDoesNotFailRequest(t *testing.T) {
	completion := &scriptedCompletion{text: "ok"}
	cache := newFakeRedis()
	cache.setErr = errors.New("redis down")
	svc := newTestService(completion, cache, time.Millisecond)

	res, err := svc.GetAdvice(context.Background(), "user-1", advice.AdviceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Advice)
}

func TestGetLatestAdvice_NotFound(t *testing.T) {
	svc := newTestService(&scriptedCompletion{}, newFakeRedis(), time.Millisecond)

	_, err := svc.GetLatestAdvice(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, advice.ErrAdviceNotFound)
}

func TestGetLatestAdvice_ReturnsCached(t *testing.T) {
	cache := newFakeRedis()
	cache.stored["user-1"] = "previous advice"
	svc := newTestService(&scriptedCompletion{}, cache, time.Millisecond)

	res, err := svc.GetLatestAdvice(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "previous advice", res.Advice)
}

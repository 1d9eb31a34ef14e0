package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches the most recent advice text per user. Financial aggregates
// are always recomputed and never pass through here.
type IRedis interface {
	SetLatestAdvice(ctx context.Context, userID string, advice string, expiration time.Duration) error
	GetLatestAdvice(ctx context.Context, userID string) (string, error)
}

var ErrNotFound = errors.New("key not found")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func adviceKey(userID string) string {
	return "advice:latest:" + userID
}

func (r *redisClient) SetLatestAdvice(ctx context.Context, userID string, advice string, expiration time.Duration) error {
	if err := r.client.Set(ctx, adviceKey(userID), advice, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching advice for user %s: %v", userID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetLatestAdvice(ctx context.Context, userID string) (string, error) {
	val, err := r.client.Get(ctx, adviceKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cached advice for user %s: %v", userID, err))
		return "", err
	}
	return val, nil
}

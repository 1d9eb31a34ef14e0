package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Sentinel errors let callers decide what is retryable. Only ErrRateLimited
// (upstream HTTP 429) is; everything else fails the request immediately.
var (
	ErrRateLimited       = errors.New("completion API rate limited")
	ErrMalformedResponse = errors.New("completion API returned no choices")
)

type ICompletion interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type completionClient struct {
	client *openai.Client
	model  string
}

func NewCompletionClient() (ICompletion, error) {
	apiKey := os.Getenv("ADVICE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("advice API key is required")
	}

	model := os.Getenv("ADVICE_MODEL")
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("ADVICE_API_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}

	return &completionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (c *completionClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("completion API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	return resp.Choices[0].Message.Content, nil
}

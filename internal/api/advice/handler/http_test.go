package adviceHandler

import (
	"net/http/httptest"
	"testing"

	"finflow/internal/api/advice"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubAdviceService struct{}

func (stubAdviceService) GetAdvice(context.Context, string, advice.AdviceRequest) (advice.AdviceResponse, error) {
	return advice.AdviceResponse{}, nil
}

func (stubAdviceService) GetLatestAdvice(context.Context, string) (advice.AdviceResponse, error) {
	return advice.AdviceResponse{}, nil
}

func newRoutedApp() *fiber.App {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	// Same routing flags the real app runs with.
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	h := New(log, validator.New(), middleware.New(log), stubAdviceService{})
	h.Start(app.Group("/api"))

	return app
}

func TestAdviceRoutesResolveWithoutTrailingSlash(t *testing.T) {
	app := newRoutedApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/advice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
		"unauthenticated request must hit the token gate, not a missing route")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/advice/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

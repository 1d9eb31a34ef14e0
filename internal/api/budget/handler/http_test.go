package budgetHandler

import (
	"net/http/httptest"
	"testing"

	"finflow/internal/api/budget"
	"finflow/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubBudgetService struct{}

func (stubBudgetService) CreateBudget(context.Context, budget.CreateBudgetRequest) error {
	return nil
}

func (stubBudgetService) GetBudgetsByUserID(context.Context, string) ([]budget.BudgetResponse, error) {
	return nil, nil
}

func (stubBudgetService) UpdateBudget(context.Context, budget.UpdateBudgetRequest) error {
	return nil
}

func (stubBudgetService) DeleteBudget(context.Context, string, string) error {
	return nil
}

func newRoutedApp() *fiber.App {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	// Same routing flags the real app runs with.
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	h := New(log, validator.New(), middleware.New(log), stubBudgetService{})
	h.Start(app.Group("/api"))

	return app
}

func TestBudgetRoutesResolveWithoutTrailingSlash(t *testing.T) {
	app := newRoutedApp()

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/budget"},
		{fiber.MethodGet, "/api/budget/user/some-user"},
		{fiber.MethodPut, "/api/budget/some-id"},
		{fiber.MethodDelete, "/api/budget/some-id"},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
			"%s %s must hit the token gate, not a missing route", tc.method, tc.path)
	}
}

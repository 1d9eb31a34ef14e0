package config

import (
	"io"
	"net/http/httptest"
	"testing"

	"finflow/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiberAssignsRequestIDBeforeLogging(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	logger := log.NewLogger()

	app := NewFiber(logger)
	app.Get("/ping", func(c *fiber.Ctx) error {
		id, _ := c.Locals("X-Request-ID").(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, string(body), "request id local must be set before handlers run")
	assert.Equal(t, string(body), resp.Header.Get("X-Request-ID"))
}

func TestNewFiberKeepsClientRequestID(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	logger := log.NewLogger()

	app := NewFiber(logger)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "client-supplied-id", resp.Header.Get("X-Request-ID"))
}

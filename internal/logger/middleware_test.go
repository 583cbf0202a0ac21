// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	netHTTP "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddleware(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	sink := NewSink(WithTimeFn(fixedClock))
	sink.AddConsole(buffer)
	component := NewComponent(sink, "http")

	app := fiber.New(fiber.Config{})
	require.NotNil(t, app)

	middleware := RequestMiddleware(component, []string{"/-/healthz"})
	require.NotNil(t, middleware)

	app.Use(middleware)
	app.Get("/foo", func(c *fiber.Ctx) error {
		assert.Same(t, sink, SinkFromContext(c.UserContext()))
		ComponentFromContext(c.UserContext()).Warning("inside handler")
		return c.SendString("bar")
	})
	app.Get("/-/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(netHTTP.StatusOK)
	})

	req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/foo", nil)
	req.Header.Set("User-Agent", "UnitTestAgent/1.0")
	req.Header.Set(requestIDHeaderName, "req-1")
	req.Header.Set(forwardedForHeaderKey, "10.0.0.1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	healthReq := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/-/healthz", nil)
	healthResp, err := app.Test(healthReq)
	require.NoError(t, err)
	defer healthResp.Body.Close()

	splitted := strings.Split(buffer.String(), "\n")
	require.Len(t, splitted, 4)
	require.Empty(t, splitted[3])

	assert.Contains(t, splitted[0], "[STEP] 2024-01-02 03:04:05 | http | "+IncomingRequestMessage+" | request_id=req-1 | method=GET | path=/foo")
	assert.Contains(t, splitted[0], "ip=10.0.0.1")
	assert.True(t, strings.HasSuffix(splitted[1], "[WARNING] 2024-01-02 03:04:05 | http | inside handler | request_id=req-1"))
	assert.Contains(t, splitted[2], "[INFO] 2024-01-02 03:04:05 | http | "+RequestCompletedMessage+" | request_id=req-1")
	assert.Contains(t, splitted[2], "status=200 | bytes=3")
}

func TestRequestMiddlewareHandlerError(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	sink := NewSink(WithTimeFn(fixedClock))
	sink.AddConsole(buffer)

	app := fiber.New(fiber.Config{})
	app.Use(RequestMiddleware(NewComponent(sink, "http"), nil))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(netHTTP.StatusNotFound, "not here")
	})

	resp, err := app.Test(httptest.NewRequest(netHTTP.MethodGet, "http://example.com/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `request_id=[0-9a-f-]{36}`, lines[0])
	assert.Contains(t, lines[1], "status=404 | bytes=8")
}

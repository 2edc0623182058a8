package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"marina-guard-backend/internal/api/handlers"
	"marina-guard-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	newRouter := func(h *handlers.HealthHandler) *testutils.HTTPTestSuite {
		s := testutils.SetupHTTPTest()
		s.Router.GET("/health", h.Health)
		s.Router.GET("/health/ready", h.Ready)
		s.Router.GET("/health/live", h.Live)
		return s
	}

	t.Run("Healthy without checks", func(t *testing.T) {
		s := newRouter(handlers.NewHealthHandler(nil, "1.2.3"))

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.2.3", response.Version)
		assert.Empty(t, response.Services)
	})

	t.Run("Failing dependency", func(t *testing.T) {
		h := handlers.NewHealthHandler(nil, "1.2.3")
		h.AddCheck("redis", func(context.Context) error { return nil })
		h.AddCheck("nats", func(context.Context) error { return errors.New("no servers available") })
		s := newRouter(h)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "healthy", response.Services["redis"])
		assert.Equal(t, "error: no servers available", response.Services["nats"])

		ready := s.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, ready.Code)
		assert.Contains(t, ready.Body.String(), "not ready: no servers available")
	})

	t.Run("Checks see a deadline", func(t *testing.T) {
		h := handlers.NewHealthHandler(nil, "dev")
		h.AddCheck("database", func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		})

		recorder := newRouter(h).MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Live never consults dependencies", func(t *testing.T) {
		h := handlers.NewHealthHandler(nil, "dev")
		h.AddCheck("database", func(context.Context) error { return errors.New("down") })

		recorder := newRouter(h).MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"alive":true`)
	})
}

package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"meal-planner-backend/internal/api/handlers"
	"meal-planner-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealth_Live(t *testing.T) {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(nil, nil)
	h.Router.GET("/health/live", handler.Live)

	w := h.MakeRequest(http.MethodGet, "/health/live", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, w, http.StatusOK, &body)
	assert.Equal(t, true, body["alive"])
}

func TestHealth_ReportsMissingDatabaseAndCache(t *testing.T) {
	h := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(nil, failingPinger{})
	h.Router.GET("/health", handler.Health)

	w := h.MakeRequest(http.MethodGet, "/health", nil)

	var body handlers.HealthResponse
	testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &body)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unreachable", body.Services["cache"])
	assert.Contains(t, body.Services["database"], "not configured")
}

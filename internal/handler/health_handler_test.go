package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		cache := new(MockCache)
		quizRepo.On("Probe", mock.Anything).Return(nil)
		cache.On("Ping", mock.Anything).Return(nil)

		app := newTestApp()
		app.Get("/healthz", NewHealthHandler(quizRepo, cache).Health)

		resp := doRequest(t, app, http.MethodGet, "/healthz", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body HealthResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, HealthResponse{Status: "ok", Database: "up", Cache: "up"}, body)
	})

	t.Run("database down", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		cache := new(MockCache)
		quizRepo.On("Probe", mock.Anything).Return(errors.New("refused"))
		cache.On("Ping", mock.Anything).Return(nil)

		app := newTestApp()
		app.Get("/healthz", NewHealthHandler(quizRepo, cache).Health)

		resp := doRequest(t, app, http.MethodGet, "/healthz", nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body HealthResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "down", body.Database)
	})
}

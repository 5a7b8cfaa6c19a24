package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/middleware"
	"quiz-room/internal/validation"
)

func newResultsTestApp(results *MockResultsService) *fiber.App {
	v := validation.NewValidator()
	h := NewResultsHandler(results, v)
	app := newTestApp()
	app.Get("/api/quizzes/:quizId/results", withSession(testUser), middleware.NewValidationMiddleware(v).ValidateQuizID(), h.GetResults)
	return app
}

func TestResultsHandler_GetResults(t *testing.T) {
	outcome := domain.Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125}
	target := "/api/quizzes/" + testQuizID + "/results?score=3&total=5&time_taken=125"

	t.Run("ready", func(t *testing.T) {
		results := new(MockResultsService)
		results.On("Load", mock.Anything, testUser, testQuizID, outcome).Return(&domain.Results{
			QuizID:                    testQuizID,
			QuizTitle:                 "Go Basics",
			Outcome:                   outcome,
			Percentage:                60,
			Grade:                     "D",
			AverageSecondsPerQuestion: 25,
		}, nil).Once()

		resp := doRequest(t, newResultsTestApp(results), http.MethodGet, target, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.ResultsResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, 60, body.Percentage)
		assert.Equal(t, "D", body.Grade)
		assert.Equal(t, 25, body.AverageSecondsPerQuestion)
	})

	t.Run("backend failure is retryable", func(t *testing.T) {
		results := new(MockResultsService)
		results.On("Load", mock.Anything, testUser, testQuizID, outcome).
			Return(nil, domain.NewBackendUnavailableError(errors.New("timeout"))).Once()

		resp := doRequest(t, newResultsTestApp(results), http.MethodGet, target, nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body dto.ResultsErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "load_failed", body.Status)
		assert.True(t, body.Retryable)
	})

	t.Run("quiz not found", func(t *testing.T) {
		results := new(MockResultsService)
		results.On("Load", mock.Anything, testUser, testQuizID, outcome).
			Return(nil, domain.NewQuizNotFoundError(testQuizID)).Once()

		resp := doRequest(t, newResultsTestApp(results), http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("score above total", func(t *testing.T) {
		results := new(MockResultsService)
		resp := doRequest(t, newResultsTestApp(results), http.MethodGet,
			"/api/quizzes/"+testQuizID+"/results?score=6&total=5&time_taken=1", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		results.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

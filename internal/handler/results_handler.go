package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/middleware"
	"quiz-room/internal/service"
	"quiz-room/internal/validation"
)

const resultsLoadFailed = "load_failed"

// ResultsHandler serves the review of a finished attempt.
type ResultsHandler struct {
	results   service.ResultsService
	validator *validation.Validator
}

func NewResultsHandler(results service.ResultsService, validator *validation.Validator) *ResultsHandler {
	return &ResultsHandler{results: results, validator: validator}
}

// resultsFailure renders a failed load as a retryable screen state, or
// returns nil when err is not a backend failure.
func resultsFailure(err error) *dto.ResultsErrorResponse {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.CodeBackendUnavailable {
		return nil
	}
	return &dto.ResultsErrorResponse{
		Status:    resultsLoadFailed,
		Message:   "Failed to load results. Please try again.",
		Retryable: true,
	}
}

// GetResults godoc
// @Summary Load the results of the latest attempt
// @Description score, total and time_taken are the outcome handed over by the quiz screen and are shown as is.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param score query int true "Score"
// @Param total query int true "Total questions"
// @Param time_taken query int true "Time taken in seconds"
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} dto.ResultsErrorResponse
// @Router /quizzes/{quizId}/results [get]
func (h *ResultsHandler) GetResults(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("no active session")
	}
	quizID, _ := c.Locals(middleware.ValidatedQuizIDKey).(string)
	if quizID == "" {
		quizID = c.Params("quizId")
	}

	var query dto.ResultsQuery
	if err := c.QueryParser(&query); err != nil {
		return domain.NewInvalidInputError("invalid query parameters")
	}
	if errs := h.validator.Struct(query); len(errs) > 0 {
		return errs
	}

	results, err := h.results.Load(c.UserContext(), session, quizID, query.Outcome())
	if err != nil {
		if failure := resultsFailure(err); failure != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(failure)
		}
		return err
	}
	return c.JSON(dto.NewResultsResponse(results))
}

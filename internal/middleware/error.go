package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// errorReply is the answer to one failed request.
type errorReply struct {
	status int
	body   interface{}
	fields []zap.Field
}

// replyFor classifies err. Validation and domain errors keep their codes,
// fiber errors keep their status, anything else is an opaque 500.
func replyFor(err error) errorReply {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return errorReply{
			status: http.StatusBadRequest,
			body: ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			},
			fields: []zap.Field{zap.Int("error_count", len(validationErrs))},
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := mapDomainErrorToHTTPStatus(domainErr)
		resp := ErrorResponse{Code: string(domainErr.Code), Message: domainErr.Message, Status: status}
		if len(domainErr.Context) > 0 {
			resp.Details = domainErr.Context
		}
		return errorReply{
			status: status,
			body:   resp,
			fields: []zap.Field{zap.String("code", string(domainErr.Code)), zap.Error(domainErr.Cause)},
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorReply{
			status: fiberErr.Code,
			body:   ErrorResponse{Code: "HTTP_ERROR", Message: fiberErr.Message, Status: fiberErr.Code},
		}
	}

	return errorReply{
		status: http.StatusInternalServerError,
		body: ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		},
		fields: []zap.Field{zap.Error(err)},
	}
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		reply := replyFor(err)
		fields := append([]zap.Field{
			zap.String("path", c.Path()),
			zap.Int("status", reply.status),
			zap.String("message", err.Error()),
		}, reply.fields...)

		if reply.status >= http.StatusInternalServerError {
			logger.Get().Error("Request failed", fields...)
		} else {
			logger.Get().Info("Request rejected", fields...)
		}
		return c.Status(reply.status).JSON(reply.body)
	}
}

// statusForError predicts the status ErrorHandler will answer err with.
func statusForError(err error) int {
	return replyFor(err).status
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound, domain.CodeQuizNotFound, domain.CodeSessionNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeInvalidTransition, domain.CodeSubmitUnavailable, domain.CodeSessionClosed:
		return http.StatusConflict
	case domain.CodeBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

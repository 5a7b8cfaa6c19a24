package middleware

import (
	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/validation"
)

const (
	ValidatedQuizIDKey    = "validated_quiz_id"
	ValidatedSessionIDKey = "validated_session_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateQuizID validates the quizId path parameter
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Params("quizId")
		if errs := vm.validator.ValidateUUID("quizId", quizID); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals(ValidatedQuizIDKey, quizID)
		return c.Next()
	}
}

// ValidateSessionID validates the sessionId path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("sessionId")
		if errs := vm.validator.ValidateULID("sessionId", sessionID); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedSessionIDKey, sessionID)
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
	"quiz-room/internal/service"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionKey          = "session" // Key for storing *domain.Session in fiber.Ctx locals
)

// accessToken reads the bearer token, falling back to the session cookie.
// ok is false when a header is present but malformed.
func accessToken(c *fiber.Ctx) (token string, code string, ok bool) {
	authHeader := c.Get(AuthorizationHeader)
	if authHeader == "" {
		token = c.Cookies(AccessTokenCookie)
		if token == "" {
			return "", "MISSING_AUTH_HEADER", false
		}
		return token, "", true
	}
	// fasthttp trims trailing spaces, so "Bearer " arrives as "Bearer"
	if strings.TrimSpace(authHeader) == strings.TrimSpace(BearerSchema) {
		return "", "EMPTY_TOKEN", false
	}
	if !strings.HasPrefix(authHeader, BearerSchema) {
		return "", "INVALID_AUTH_SCHEME", false
	}
	token = strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	if token == "" {
		return "", "EMPTY_TOKEN", false
	}
	return token, "", true
}

var authMessages = map[string]string{
	"MISSING_AUTH_HEADER": "Authorization header is missing",
	"INVALID_AUTH_SCHEME": "Authorization scheme is not Bearer",
	"EMPTY_TOKEN":         "Token is empty",
}

// Protected rejects requests without a valid access token and stores the
// resolved session in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, code, ok := accessToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    code,
				Message: authMessages[code],
				Status:  fiber.StatusUnauthorized,
			})
		}

		session, err := authService.ResolveSession(c.UserContext(), token)
		if err != nil {
			logger.Get().Debug("JWT validation failed", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// OptionalAuth resolves the session when a valid token is present and
// otherwise proceeds anonymously.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, code, ok := accessToken(c)
		if !ok {
			if code != "MISSING_AUTH_HEADER" {
				logger.Get().Debug("OptionalAuth: malformed credentials, proceeding as anonymous.", zap.String("code", code))
			}
			return c.Next()
		}

		session, err := authService.ResolveSession(c.UserContext(), token)
		if err != nil {
			logger.Get().Debug("OptionalAuth: JWT validation failed, proceeding as anonymous.", zap.Error(err))
			return c.Next()
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by Protected or OptionalAuth.
func SessionFromCtx(c *fiber.Ctx) (*domain.Session, bool) {
	session, ok := c.Locals(SessionKey).(*domain.Session)
	return session, ok && session != nil
}

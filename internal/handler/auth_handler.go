package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-room/internal/config"
	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/logger"
	"quiz-room/internal/middleware"
	"quiz-room/internal/service"
	"quiz-room/internal/validation"
)

// AuthHandler handles sign-in, sign-up and session endpoints.
type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
	authCfg     config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, validator *validation.Validator, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator, authCfg: authCfg}
}

// authErrorStatus picks the status a categorized provider error is answered with.
func authErrorStatus(category domain.AuthErrorCategory) int {
	switch category {
	case domain.AuthInvalidCredentials:
		return fiber.StatusUnauthorized
	case domain.AuthEmailNotConfirmed:
		return fiber.StatusForbidden
	case domain.AuthRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusBadRequest
	}
}

func (h *AuthHandler) respond(c *fiber.Ctx, result *domain.AuthResult, successStatus int) error {
	if result.Error != nil {
		status := authErrorStatus(result.Error.Category)
		return c.Status(status).JSON(dto.AuthErrorResponse{Error: *result.Error, Status: status})
	}
	if result.Session != nil {
		middleware.SetSessionCookies(c, h.authCfg, result.Session)
	}
	return c.Status(successStatus).JSON(dto.NewAuthResponse(result))
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Failure 403 {object} dto.AuthErrorResponse
// @Failure 429 {object} dto.AuthErrorResponse
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}

	result := h.authService.SignIn(c.UserContext(), req.Email, req.Password)
	return h.respond(c, result, fiber.StatusOK)
}

// SignUp godoc
// @Summary Create an account
// @Description Answers without tokens and with confirmation_required when the email must be confirmed first.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.SignUpRequest true "Account"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 429 {object} dto.AuthErrorResponse
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}

	result := h.authService.SignUp(c.UserContext(), req.Email, req.Password)
	return h.respond(c, result, fiber.StatusCreated)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new session
// @Description The refresh token is read from the body, or from the refresh cookie when the body is empty.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest false "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.AuthErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
	}
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies(middleware.RefreshTokenCookie)
	}

	result := h.authService.Refresh(c.UserContext(), req.RefreshToken)
	return h.respond(c, result, fiber.StatusOK)
}

// SignOut godoc
// @Summary Sign out
// @Description Revokes the session, clears cookies and drops the user's quiz session and screen state.
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("no active session")
	}

	if err := h.authService.SignOut(c.UserContext(), session); err != nil {
		// local state is already gone; the provider session expires on its own
		logger.Get().Warn("Sign-out completed with provider error",
			zap.String("userID", session.UserID()),
			zap.Error(err))
	}
	middleware.ClearSessionCookies(c, h.authCfg)
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary Resolve the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionStateResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	resp := dto.SessionStateResponse{Loading: false}
	if session, ok := middleware.SessionFromCtx(c); ok {
		resp.User = dto.NewUserResponse(session.User)
	}
	return c.JSON(resp)
}

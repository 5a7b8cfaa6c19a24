package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/middleware"
	"quiz-room/internal/service"
	"quiz-room/internal/validation"
)

// SessionHandler drives quiz sessions.
type SessionHandler struct {
	sessions  service.SessionService
	validator *validation.Validator
}

func NewSessionHandler(sessions service.SessionService, validator *validation.Validator) *SessionHandler {
	return &SessionHandler{sessions: sessions, validator: validator}
}

func sessionParams(c *fiber.Ctx) (*domain.Session, string, error) {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return nil, "", domain.NewUnauthorizedError("no active session")
	}
	sessionID, _ := c.Locals(middleware.ValidatedSessionIDKey).(string)
	if sessionID == "" {
		sessionID = c.Params("sessionId")
	}
	return session, sessionID, nil
}

// StartSession godoc
// @Summary Select a quiz and start a session
// @Description Starting a session abandons the user's previous one.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 201 {object} dto.SessionView
// @Failure 404 {object} dto.SessionView "quiz missing or without questions"
// @Router /quizzes/{quizId}/sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("no active session")
	}
	quizID, _ := c.Locals(middleware.ValidatedQuizIDKey).(string)
	if quizID == "" {
		quizID = c.Params("quizId")
	}

	view, err := h.sessions.Start(c.UserContext(), session, quizID)
	if err != nil {
		return err
	}
	if view.State == domain.SessionNotFound {
		return c.Status(fiber.StatusNotFound).JSON(view)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession godoc
// @Summary Get the state of a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	view, err := h.sessions.Get(c.UserContext(), session, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectAnswer godoc
// @Summary Select an option for the current question
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param answer body dto.SelectAnswerRequest true "Option"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId}/answer [put]
func (h *SessionHandler) SelectAnswer(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	var req dto.SelectAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}
	option, err := domain.ParseOptionKey(req.Option)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("option", req.Option)}
	}

	view, err := h.sessions.Select(c.UserContext(), session, sessionID, option)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Next godoc
// @Summary Move to the next question
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId}/next [post]
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	view, err := h.sessions.Next(c.UserContext(), session, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Previous godoc
// @Summary Move to the previous question
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId}/previous [post]
func (h *SessionHandler) Previous(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	view, err := h.sessions.Previous(c.UserContext(), session, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Jump godoc
// @Summary Jump to a question by index
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param jump body dto.JumpRequest true "Index"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId}/jump [post]
func (h *SessionHandler) Jump(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}

	view, err := h.sessions.Jump(c.UserContext(), session, sessionID, *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Submit godoc
// @Summary Submit the session
// @Description Only available on the last question. A failed submission leaves the session in submitting and may be retried.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.SessionView
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId}/submit [post]
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	view, err := h.sessions.Submit(c.UserContext(), session, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Abandon godoc
// @Summary Abandon the session without submitting
// @Tags sessions
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{sessionId} [delete]
func (h *SessionHandler) Abandon(c *fiber.Ctx) error {
	session, sessionID, err := sessionParams(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Abandon(c.UserContext(), session, sessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

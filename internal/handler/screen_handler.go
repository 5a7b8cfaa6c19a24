package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/logger"
	"quiz-room/internal/middleware"
	"quiz-room/internal/service"
)

// ScreenHandler is the navigation root: it answers the current screen
// together with the data that screen shows.
type ScreenHandler struct {
	nav      service.NavigationService
	catalog  service.CatalogService
	sessions service.SessionService
	results  service.ResultsService
}

func NewScreenHandler(
	nav service.NavigationService,
	catalog service.CatalogService,
	sessions service.SessionService,
	results service.ResultsService,
) *ScreenHandler {
	return &ScreenHandler{nav: nav, catalog: catalog, sessions: sessions, results: results}
}

func (h *ScreenHandler) render(ctx context.Context, session *domain.Session, screen domain.Screen) (dto.ScreenResponse, error) {
	resp := dto.ScreenResponse{Screen: string(screen.Name())}

	switch s := screen.(type) {
	case domain.AuthScreen:
		return resp, nil

	case domain.DashboardScreen:
		resp.Data = dto.NewDashboardResponse(h.catalog.Load(ctx, session))

	case domain.QuizScreen:
		resp.QuizID = s.QuizID
		view, err := h.sessions.Get(ctx, session, s.SessionID)
		if err != nil {
			// the session is gone, e.g. after a restart
			logger.Get().Info("Stored quiz screen has no live session",
				zap.String("userID", session.UserID()),
				zap.String("sessionID", s.SessionID),
				zap.Error(err))
			next, err := h.nav.Back(ctx, session.UserID())
			if err != nil {
				return resp, err
			}
			return h.render(ctx, session, next)
		}
		resp.Data = view

	case domain.ResultsScreen:
		resp.QuizID = s.QuizID
		results, err := h.results.Load(ctx, session, s.QuizID, s.Outcome)
		if err != nil {
			failure := resultsFailure(err)
			if failure == nil {
				return resp, err
			}
			resp.Data = failure
			return resp, nil
		}
		resp.Data = dto.NewResultsResponse(results)
	}
	return resp, nil
}

// GetScreen godoc
// @Summary Current screen
// @Description Answers the auth screen when no valid session exists, otherwise the stored screen with its data.
// @Tags screen
// @Produce json
// @Success 200 {object} dto.ScreenResponse
// @Router /screen [get]
func (h *ScreenHandler) GetScreen(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return c.JSON(dto.ScreenResponse{Screen: string(domain.ScreenAuth)})
	}

	ctx := c.UserContext()
	screen, err := h.nav.Current(ctx, session.UserID())
	if err != nil {
		return domain.NewBackendUnavailableError(err)
	}
	resp, err := h.render(ctx, session, screen)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Back godoc
// @Summary Back to the dashboard
// @Description Leaving a quiz abandons its session without submitting.
// @Tags screen
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ScreenResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /screen/back [post]
func (h *ScreenHandler) Back(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("no active session")
	}

	ctx := c.UserContext()
	userID := session.UserID()
	current, err := h.nav.Current(ctx, userID)
	if err != nil {
		return domain.NewBackendUnavailableError(err)
	}

	abandoned := false
	if q, onQuiz := current.(domain.QuizScreen); onQuiz {
		// Abandon also moves navigation back
		abandoned = h.sessions.Abandon(ctx, session, q.SessionID) == nil
	}
	next := domain.Screen(domain.DashboardScreen{})
	if !abandoned {
		if next, err = h.nav.Back(ctx, userID); err != nil {
			return err
		}
	}

	resp, err := h.render(ctx, session, next)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

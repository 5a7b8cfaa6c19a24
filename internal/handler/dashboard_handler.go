package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/middleware"
	"quiz-room/internal/service"
)

// DashboardHandler serves the quiz catalog.
type DashboardHandler struct {
	catalog service.CatalogService
}

func NewDashboardHandler(catalog service.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalog: catalog}
}

// GetDashboard godoc
// @Summary Load the dashboard
// @Description Lists active quizzes with the user's attempt history. Backend failures are reported in status.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("no active session")
	}
	return c.JSON(dto.NewDashboardResponse(h.catalog.Load(c.UserContext(), session)))
}

// Retry godoc
// @Summary Retry loading the dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard/retry [post]
func (h *DashboardHandler) Retry(c *fiber.Ctx) error {
	return h.GetDashboard(c)
}

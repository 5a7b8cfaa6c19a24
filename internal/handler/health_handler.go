package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the database and the cache are reachable.
type HealthHandler struct {
	quizRepo domain.QuizRepository
	cache    domain.Cache
}

func NewHealthHandler(quizRepo domain.QuizRepository, cache domain.Cache) *HealthHandler {
	return &HealthHandler{quizRepo: quizRepo, cache: cache}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func componentStatus(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

// Health godoc
// @Summary Liveness and dependency probe
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 503 {object} handler.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	dbErr := h.quizRepo.Probe(ctx)
	cacheErr := h.cache.Ping(ctx)

	resp := HealthResponse{
		Status:   "ok",
		Database: componentStatus(dbErr),
		Cache:    componentStatus(cacheErr),
	}
	if dbErr != nil || cacheErr != nil {
		logger.Get().Warn("Health check failed", zap.NamedError("database", dbErr), zap.NamedError("cache", cacheErr))
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
	"quiz-room/internal/metrics"
)

const (
	connectionFailedMessage = "Unable to connect to the quiz service. Check your connection and try again."
	loadFailedMessage       = "Failed to load quizzes. Please try again."
)

// CatalogService builds the dashboard: available quizzes plus the user's history.
type CatalogService interface {
	// Load never fails; backend problems are reported through Dashboard.Status.
	Load(ctx context.Context, session *domain.Session) *domain.Dashboard
}

type catalogServiceImpl struct {
	quizRepo    domain.QuizRepository
	attemptRepo domain.AttemptRepository
}

func NewCatalogService(quizRepo domain.QuizRepository, attemptRepo domain.AttemptRepository) CatalogService {
	return &catalogServiceImpl{quizRepo: quizRepo, attemptRepo: attemptRepo}
}

func (s *catalogServiceImpl) Load(ctx context.Context, session *domain.Session) *domain.Dashboard {
	defer metrics.ObserveSince("dashboard", time.Now())
	appLogger := logger.Get().With(zap.String("userID", session.UserID()))

	if err := s.quizRepo.Probe(ctx); err != nil {
		appLogger.Warn("Quiz backend probe failed", zap.Error(err))
		metrics.DashboardLoads.WithLabelValues(string(domain.DashboardConnectionFailed)).Inc()
		return &domain.Dashboard{Status: domain.DashboardConnectionFailed, Message: connectionFailedMessage}
	}

	var (
		quizzes  []domain.Quiz
		attempts []domain.Attempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quizzes, err = s.quizRepo.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = s.attemptRepo.ListByUser(gctx, session.UserID())
		return err
	})
	if err := g.Wait(); err != nil {
		appLogger.Error("Failed to load dashboard", zap.Error(err))
		metrics.DashboardLoads.WithLabelValues(string(domain.DashboardError)).Inc()
		return &domain.Dashboard{Status: domain.DashboardError, Message: loadFailedMessage}
	}

	metrics.DashboardLoads.WithLabelValues(string(domain.DashboardReady)).Inc()
	return &domain.Dashboard{
		Status:  domain.DashboardReady,
		Quizzes: domain.BuildQuizCards(quizzes, attempts),
		Stats:   domain.ComputeStats(attempts),
	}
}

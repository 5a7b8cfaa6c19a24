package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
	"quiz-room/internal/metrics"
)

// ResultsService assembles the review of a finished attempt.
type ResultsService interface {
	// Load re-fetches the quiz and the user's latest answers. The outcome is
	// the one handed over by the quiz screen and is shown as is.
	Load(ctx context.Context, session *domain.Session, quizID string, outcome domain.Outcome) (*domain.Results, error)
}

type resultsServiceImpl struct {
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
}

func NewResultsService(quizRepo domain.QuizRepository, questionRepo domain.QuestionRepository, attemptRepo domain.AttemptRepository) ResultsService {
	return &resultsServiceImpl{quizRepo: quizRepo, questionRepo: questionRepo, attemptRepo: attemptRepo}
}

func (s *resultsServiceImpl) Load(ctx context.Context, session *domain.Session, quizID string, outcome domain.Outcome) (*domain.Results, error) {
	defer metrics.ObserveSince("results", time.Now())

	var (
		title     string
		questions []domain.Question
		answers   map[string]domain.OptionKey
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		title, err = s.quizRepo.GetTitle(gctx, quizID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.questionRepo.ListByQuiz(gctx, quizID)
		return err
	})
	g.Go(func() error {
		var err error
		answers, err = s.attemptRepo.LatestAnswers(gctx, session.UserID(), quizID)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to load results",
			zap.String("userID", session.UserID()),
			zap.String("quizID", quizID),
			zap.Error(err))
		if errors.Is(err, domain.ErrNoRows) {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		return nil, domain.NewBackendUnavailableError(fmt.Errorf("results for quiz %s: %w", quizID, err))
	}

	return domain.BuildResults(quizID, title, questions, answers, outcome), nil
}

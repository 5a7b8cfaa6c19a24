package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quiz-room/internal/cache"
	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
)

// NavigationService keeps the current screen of every signed-in user.
type NavigationService interface {
	// Current returns the stored screen, or the dashboard when none is stored.
	Current(ctx context.Context, userID string) (domain.Screen, error)
	// SelectQuiz moves to the quiz screen. A quiz screen left over from an
	// earlier session is replaced.
	SelectQuiz(ctx context.Context, userID, quizID, sessionID string) (domain.Screen, error)
	// CompleteQuiz moves to results if the user is still on the given session.
	CompleteQuiz(ctx context.Context, userID, sessionID string, outcome domain.Outcome) (domain.Screen, error)
	Back(ctx context.Context, userID string) (domain.Screen, error)
	Reset(ctx context.Context, userID string) error
}

type navigationServiceImpl struct {
	store domain.Cache
	ttl   time.Duration
}

func NewNavigationService(store domain.Cache, ttl time.Duration) NavigationService {
	return &navigationServiceImpl{store: store, ttl: ttl}
}

func (s *navigationServiceImpl) Current(ctx context.Context, userID string) (domain.Screen, error) {
	raw, err := s.store.Get(ctx, cache.ScreenKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.DashboardScreen{}, nil
		}
		return nil, fmt.Errorf("failed to load screen state: %w", err)
	}

	screen, err := domain.UnmarshalScreen([]byte(raw))
	if err != nil {
		logger.Get().Warn("Discarding unreadable screen state",
			zap.String("userID", userID),
			zap.Error(err))
		return domain.DashboardScreen{}, nil
	}
	if _, ok := screen.(domain.AuthScreen); ok {
		// a signed-in user is never on the auth screen
		return domain.DashboardScreen{}, nil
	}
	return screen, nil
}

func (s *navigationServiceImpl) save(ctx context.Context, userID string, screen domain.Screen) error {
	data, err := domain.MarshalScreen(screen)
	if err != nil {
		return fmt.Errorf("failed to encode screen state: %w", err)
	}
	if err := s.store.Set(ctx, cache.ScreenKey(userID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save screen state: %w", err)
	}
	return nil
}

func (s *navigationServiceImpl) SelectQuiz(ctx context.Context, userID, quizID, sessionID string) (domain.Screen, error) {
	from, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, onQuiz := from.(domain.QuizScreen); onQuiz {
		if from, err = domain.Back(from); err != nil {
			return nil, err
		}
	}

	next, err := domain.SelectQuiz(from, quizID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *navigationServiceImpl) CompleteQuiz(ctx context.Context, userID, sessionID string, outcome domain.Outcome) (domain.Screen, error) {
	from, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if q, ok := from.(domain.QuizScreen); !ok || q.SessionID != sessionID {
		logger.Get().Info("Completed session is no longer on screen",
			zap.String("userID", userID),
			zap.String("sessionID", sessionID),
			zap.String("screen", string(from.Name())))
		return from, nil
	}

	next, err := domain.CompleteQuiz(from, outcome)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *navigationServiceImpl) Back(ctx context.Context, userID string) (domain.Screen, error) {
	from, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, err := domain.Back(from)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *navigationServiceImpl) Reset(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, cache.ScreenKey(userID)); err != nil {
		return fmt.Errorf("failed to clear screen state: %w", err)
	}
	return nil
}

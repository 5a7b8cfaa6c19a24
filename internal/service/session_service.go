package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-room/internal/config"
	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
	"quiz-room/internal/logger"
	"quiz-room/internal/metrics"
	"quiz-room/internal/util"
)

// SessionService runs timed quiz sessions, one per user.
type SessionService interface {
	// Start loads a quiz and begins a session, abandoning the user's previous one.
	// A quiz that cannot be loaded yields a view in the not_found state.
	Start(ctx context.Context, session *domain.Session, quizID string) (*dto.SessionView, error)
	Get(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error)
	Select(ctx context.Context, session *domain.Session, sessionID string, option domain.OptionKey) (*dto.SessionView, error)
	Next(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error)
	Previous(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error)
	Jump(ctx context.Context, session *domain.Session, sessionID string, index int) (*dto.SessionView, error)
	Submit(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error)
	Abandon(ctx context.Context, session *domain.Session, sessionID string) error
	// AbandonUser drops whatever session the user has, without touching navigation.
	AbandonUser(ctx context.Context, userID string)
	// Shutdown stops every countdown.
	Shutdown()
}

type activeSession struct {
	mu       sync.Mutex
	quiz     *domain.QuizSession
	stop     chan struct{}
	stopOnce sync.Once
}

func (a *activeSession) stopCountdown() {
	a.stopOnce.Do(func() { close(a.stop) })
}

func (a *activeSession) view() *dto.SessionView {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := dto.NewSessionView(a.quiz)
	return &v
}

type sessionServiceImpl struct {
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
	nav          NavigationService
	cfg          config.SessionConfig
	now          func() time.Time
	// tickStep is the countdown time one tick accounts for.
	tickStep     time.Duration

	mu       sync.Mutex
	sessions map[string]*activeSession
	byUser   map[string]string
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	nav NavigationService,
	cfg config.SessionConfig,
) SessionService {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = 15 * time.Second
	}
	return &sessionServiceImpl{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		nav:          nav,
		cfg:          cfg,
		now:          time.Now,
		tickStep:     cfg.TickInterval,
		sessions:     make(map[string]*activeSession),
		byUser:       make(map[string]string),
	}
}

// sessionError maps state machine errors to domain errors.
func sessionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return domain.NewError(domain.CodeOutOfRange, err.Error(), err)
	case errors.Is(err, domain.ErrInvalidOption):
		return domain.NewError(domain.CodeInvalidInput, err.Error(), err)
	case errors.Is(err, domain.ErrSubmitUnavailable), errors.Is(err, domain.ErrSubmitInFlight):
		return domain.NewError(domain.CodeSubmitUnavailable, err.Error(), err)
	case errors.Is(err, domain.ErrSessionClosed):
		return domain.NewError(domain.CodeSessionClosed, err.Error(), err)
	}
	return err
}

func (s *sessionServiceImpl) load(ctx context.Context, quizID string) (*domain.Quiz, []domain.Question, error) {
	defer metrics.ObserveSince("quiz", time.Now())

	var (
		quiz      *domain.Quiz
		questions []domain.Question
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quiz, err = s.quizRepo.GetByID(gctx, quizID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.questionRepo.ListByQuiz(gctx, quizID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return quiz, questions, nil
}

func (s *sessionServiceImpl) Start(ctx context.Context, session *domain.Session, quizID string) (*dto.SessionView, error) {
	userID := session.UserID()
	appLogger := logger.Get().With(zap.String("userID", userID), zap.String("quizID", quizID))

	qs := domain.NewQuizSession(util.NewULID(), userID, quizID)
	quiz, questions, err := s.load(ctx, quizID)
	if err != nil {
		appLogger.Warn("Failed to load quiz for session", zap.Error(err))
		qs.MarkNotFound()
	} else {
		qs.Load(quiz, questions, s.now())
	}

	if qs.State() == domain.SessionNotFound {
		appLogger.Info("Quiz session not found", zap.Int("questions", len(questions)))
		v := dto.NewSessionView(qs)
		return &v, nil
	}

	as := &activeSession{quiz: qs, stop: make(chan struct{})}
	s.register(userID, as)

	if _, err := s.nav.SelectQuiz(ctx, userID, quizID, qs.ID); err != nil {
		appLogger.Error("Failed to move navigation to quiz", zap.Error(err))
	}

	go s.runCountdown(as)

	appLogger.Info("Quiz session started",
		zap.String("sessionID", qs.ID),
		zap.Int("questions", qs.Total()),
		zap.Int("remainingSeconds", qs.RemainingSeconds()))
	return as.view(), nil
}

func (s *sessionServiceImpl) register(userID string, as *activeSession) {
	s.mu.Lock()
	previous := s.sessions[s.byUser[userID]]
	if previous != nil {
		delete(s.sessions, previous.quiz.ID)
	}
	s.sessions[as.quiz.ID] = as
	s.byUser[userID] = as.quiz.ID
	s.mu.Unlock()

	if previous != nil {
		s.abandon(previous)
		metrics.ActiveSessions.Dec()
	}
	metrics.ActiveSessions.Inc()
}

func (s *sessionServiceImpl) remove(as *activeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[as.quiz.ID] != as {
		return
	}
	delete(s.sessions, as.quiz.ID)
	if s.byUser[as.quiz.UserID] == as.quiz.ID {
		delete(s.byUser, as.quiz.UserID)
	}
	metrics.ActiveSessions.Dec()
}

func (s *sessionServiceImpl) abandon(as *activeSession) {
	as.stopCountdown()
	as.mu.Lock()
	as.quiz.Abandon()
	as.mu.Unlock()
}

// lookup returns the session only to its owner.
func (s *sessionServiceImpl) lookup(session *domain.Session, sessionID string) (*activeSession, error) {
	s.mu.Lock()
	as, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || as.quiz.UserID != session.UserID() {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return as, nil
}

func (s *sessionServiceImpl) runCountdown(as *activeSession) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-as.stop:
			return
		case <-ticker.C:
			as.mu.Lock()
			expired := as.quiz.Tick(s.tickStep)
			closed := as.quiz.Closed()
			as.mu.Unlock()

			if expired {
				ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SubmitTimeout)
				if _, err := s.submit(ctx, as, domain.SubmitTimeout); err != nil {
					logger.Get().Error("Automatic submission failed",
						zap.String("sessionID", as.quiz.ID),
						zap.Error(err))
				}
				cancel()
				return
			}
			if closed {
				return
			}
		}
	}
}

func (s *sessionServiceImpl) submit(ctx context.Context, as *activeSession, trigger domain.SubmitTrigger) (*dto.SessionView, error) {
	as.mu.Lock()
	attempt, err := as.quiz.BeginSubmit(trigger, s.now())
	as.mu.Unlock()
	if err != nil {
		return nil, sessionError(err)
	}

	createErr := s.attemptRepo.Create(ctx, attempt)

	as.mu.Lock()
	outcome := as.quiz.FinishSubmit(attempt, createErr)
	view := dto.NewSessionView(as.quiz)
	as.mu.Unlock()

	appLogger := logger.Get().With(
		zap.String("sessionID", as.quiz.ID),
		zap.String("userID", as.quiz.UserID),
		zap.String("trigger", string(trigger)))

	if createErr != nil {
		metrics.Submissions.WithLabelValues(string(trigger), "failure").Inc()
		appLogger.Error("Failed to save quiz attempt", zap.Error(createErr))
		return nil, domain.NewInternalError("Failed to save quiz attempt", createErr)
	}

	metrics.Submissions.WithLabelValues(string(trigger), "success").Inc()
	if outcome == nil {
		appLogger.Info("Quiz attempt saved after the session was abandoned", zap.String("attemptID", attempt.ID))
		s.remove(as)
		return &view, nil
	}
	appLogger.Info("Quiz attempt saved",
		zap.String("attemptID", attempt.ID),
		zap.Int("score", outcome.Score),
		zap.Int("total", outcome.TotalQuestions),
		zap.Int("timeTaken", outcome.TimeTakenSeconds))

	as.stopCountdown()
	if _, err := s.nav.CompleteQuiz(ctx, as.quiz.UserID, as.quiz.ID, *outcome); err != nil {
		appLogger.Error("Failed to move navigation to results", zap.Error(err))
	}

	// Completed sessions stay readable for a while so a polling client sees the outcome.
	if s.cfg.Grace > 0 {
		time.AfterFunc(s.cfg.Grace, func() { s.remove(as) })
	} else {
		s.remove(as)
	}
	return &view, nil
}

func (s *sessionServiceImpl) Get(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	as, err := s.lookup(session, sessionID)
	if err != nil {
		return nil, err
	}
	return as.view(), nil
}

func (s *sessionServiceImpl) mutate(session *domain.Session, sessionID string, fn func(q *domain.QuizSession) error) (*dto.SessionView, error) {
	as, err := s.lookup(session, sessionID)
	if err != nil {
		return nil, err
	}
	as.mu.Lock()
	defer as.mu.Unlock()
	if err := fn(as.quiz); err != nil {
		return nil, sessionError(err)
	}
	v := dto.NewSessionView(as.quiz)
	return &v, nil
}

func (s *sessionServiceImpl) Select(ctx context.Context, session *domain.Session, sessionID string, option domain.OptionKey) (*dto.SessionView, error) {
	return s.mutate(session, sessionID, func(q *domain.QuizSession) error { return q.Select(option) })
}

func (s *sessionServiceImpl) Next(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return s.mutate(session, sessionID, func(q *domain.QuizSession) error { return q.Next() })
}

func (s *sessionServiceImpl) Previous(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return s.mutate(session, sessionID, func(q *domain.QuizSession) error { return q.Previous() })
}

func (s *sessionServiceImpl) Jump(ctx context.Context, session *domain.Session, sessionID string, index int) (*dto.SessionView, error) {
	return s.mutate(session, sessionID, func(q *domain.QuizSession) error { return q.Jump(index) })
}

func (s *sessionServiceImpl) Submit(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	as, err := s.lookup(session, sessionID)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, as, domain.SubmitManual)
}

func (s *sessionServiceImpl) Abandon(ctx context.Context, session *domain.Session, sessionID string) error {
	as, err := s.lookup(session, sessionID)
	if err != nil {
		return err
	}
	s.abandon(as)
	s.remove(as)

	if _, err := s.nav.Back(ctx, session.UserID()); err != nil {
		logger.Get().Error("Failed to move navigation back", zap.String("userID", session.UserID()), zap.Error(err))
	}
	return nil
}

func (s *sessionServiceImpl) AbandonUser(ctx context.Context, userID string) {
	s.mu.Lock()
	as := s.sessions[s.byUser[userID]]
	s.mu.Unlock()
	if as == nil {
		return
	}
	s.abandon(as)
	s.remove(as)
}

func (s *sessionServiceImpl) Shutdown() {
	s.mu.Lock()
	all := make([]*activeSession, 0, len(s.sessions))
	for _, as := range s.sessions {
		all = append(all, as)
	}
	s.mu.Unlock()

	for _, as := range all {
		as.stopCountdown()
	}
}

package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) *domain.AuthResult {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*domain.AuthResult)
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password string) *domain.AuthResult {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*domain.AuthResult)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) *domain.AuthResult {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(*domain.AuthResult)
}

func (m *MockAuthService) SignOut(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Load(ctx context.Context, session *domain.Session) *domain.Dashboard {
	args := m.Called(ctx, session)
	return args.Get(0).(*domain.Dashboard)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) view(args mock.Arguments) (*dto.SessionView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionView), args.Error(1)
}

func (m *MockSessionService) Start(ctx context.Context, session *domain.Session, quizID string) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, quizID))
}

func (m *MockSessionService) Get(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID))
}

func (m *MockSessionService) Select(ctx context.Context, session *domain.Session, sessionID string, option domain.OptionKey) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID, option))
}

func (m *MockSessionService) Next(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID))
}

func (m *MockSessionService) Previous(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID))
}

func (m *MockSessionService) Jump(ctx context.Context, session *domain.Session, sessionID string, index int) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID, index))
}

func (m *MockSessionService) Submit(ctx context.Context, session *domain.Session, sessionID string) (*dto.SessionView, error) {
	return m.view(m.Called(ctx, session, sessionID))
}

func (m *MockSessionService) Abandon(ctx context.Context, session *domain.Session, sessionID string) error {
	args := m.Called(ctx, session, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) AbandonUser(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}

func (m *MockSessionService) Shutdown() {
	m.Called()
}

type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) Load(ctx context.Context, session *domain.Session, quizID string, outcome domain.Outcome) (*domain.Results, error) {
	args := m.Called(ctx, session, quizID, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Results), args.Error(1)
}

type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) screen(args mock.Arguments) (domain.Screen, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Screen), args.Error(1)
}

func (m *MockNavigationService) Current(ctx context.Context, userID string) (domain.Screen, error) {
	return m.screen(m.Called(ctx, userID))
}

func (m *MockNavigationService) SelectQuiz(ctx context.Context, userID, quizID, sessionID string) (domain.Screen, error) {
	return m.screen(m.Called(ctx, userID, quizID, sessionID))
}

func (m *MockNavigationService) CompleteQuiz(ctx context.Context, userID, sessionID string, outcome domain.Outcome) (domain.Screen, error) {
	return m.screen(m.Called(ctx, userID, sessionID, outcome))
}

func (m *MockNavigationService) Back(ctx context.Context, userID string) (domain.Screen, error) {
	return m.screen(m.Called(ctx, userID))
}

func (m *MockNavigationService) Reset(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Probe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockQuizRepository) ListActive(ctx context.Context) ([]domain.Quiz, error) {
	panic("not used by handlers")
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	panic("not used by handlers")
}

func (m *MockQuizRepository) GetTitle(ctx context.Context, id string) (string, error) {
	panic("not used by handlers")
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

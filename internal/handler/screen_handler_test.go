package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-room/internal/domain"
	"quiz-room/internal/dto"
)

type screenMocks struct {
	nav      *MockNavigationService
	catalog  *MockCatalogService
	sessions *MockSessionService
	results  *MockResultsService
}

func newScreenTestApp(session *domain.Session) (*fiber.App, *screenMocks) {
	m := &screenMocks{
		nav:      new(MockNavigationService),
		catalog:  new(MockCatalogService),
		sessions: new(MockSessionService),
		results:  new(MockResultsService),
	}
	h := NewScreenHandler(m.nav, m.catalog, m.sessions, m.results)
	app := newTestApp()
	app.Get("/api/screen", withSession(session), h.GetScreen)
	app.Post("/api/screen/back", withSession(session), h.Back)
	return app, m
}

type rawScreen struct {
	Screen string                 `json:"screen"`
	QuizID string                 `json:"quiz_id"`
	Data   map[string]interface{} `json:"data"`
}

func TestScreenHandler_AnonymousGetsAuth(t *testing.T) {
	app, m := newScreenTestApp(nil)

	resp := doRequest(t, app, http.MethodGet, "/api/screen", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body rawScreen
	decodeBody(t, resp, &body)
	assert.Equal(t, "auth", body.Screen)
	assert.Nil(t, body.Data)
	m.nav.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func TestScreenHandler_Dashboard(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.DashboardScreen{}, nil).Once()
	m.catalog.On("Load", mock.Anything, testUser).Return(&domain.Dashboard{Status: domain.DashboardConnectionFailed, Message: "offline"}).Once()

	var body rawScreen
	decodeBody(t, doRequest(t, app, http.MethodGet, "/api/screen", nil), &body)
	assert.Equal(t, "dashboard", body.Screen)
	assert.Equal(t, "connection_failed", body.Data["status"])
}

func TestScreenHandler_QuizScreenWithoutLiveSession(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.QuizScreen{QuizID: testQuizID, SessionID: testSessionID}, nil).Once()
	m.sessions.On("Get", mock.Anything, testUser, testSessionID).Return(nil, domain.NewSessionNotFoundError(testSessionID)).Once()
	m.nav.On("Back", mock.Anything, "user-1").Return(domain.DashboardScreen{}, nil).Once()
	m.catalog.On("Load", mock.Anything, testUser).Return(&domain.Dashboard{Status: domain.DashboardReady}).Once()

	var body rawScreen
	decodeBody(t, doRequest(t, app, http.MethodGet, "/api/screen", nil), &body)
	assert.Equal(t, "dashboard", body.Screen)
	m.nav.AssertExpectations(t)
}

func TestScreenHandler_QuizScreen(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.QuizScreen{QuizID: testQuizID, SessionID: testSessionID}, nil).Once()
	m.sessions.On("Get", mock.Anything, testUser, testSessionID).
		Return(&dto.SessionView{ID: testSessionID, State: domain.SessionActive, RemainingSeconds: 42}, nil).Once()

	var body rawScreen
	decodeBody(t, doRequest(t, app, http.MethodGet, "/api/screen", nil), &body)
	assert.Equal(t, "quiz", body.Screen)
	assert.Equal(t, testQuizID, body.QuizID)
	assert.EqualValues(t, 42, body.Data["remaining_seconds"])
}

func TestScreenHandler_ResultsLoadFailed(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	outcome := domain.Outcome{Score: 1, TotalQuestions: 2, TimeTakenSeconds: 30}
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.ResultsScreen{QuizID: testQuizID, Outcome: outcome}, nil).Once()
	m.results.On("Load", mock.Anything, testUser, testQuizID, outcome).
		Return(nil, domain.NewBackendUnavailableError(errors.New("timeout"))).Once()

	resp := doRequest(t, app, http.MethodGet, "/api/screen", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body rawScreen
	decodeBody(t, resp, &body)
	assert.Equal(t, "results", body.Screen)
	assert.Equal(t, "load_failed", body.Data["status"])
	assert.Equal(t, true, body.Data["retryable"])
}

func TestScreenHandler_BackFromQuizAbandons(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.QuizScreen{QuizID: testQuizID, SessionID: testSessionID}, nil).Once()
	m.sessions.On("Abandon", mock.Anything, testUser, testSessionID).Return(nil).Once()
	m.catalog.On("Load", mock.Anything, testUser).Return(&domain.Dashboard{Status: domain.DashboardReady}).Once()

	var body rawScreen
	decodeBody(t, doRequest(t, app, http.MethodPost, "/api/screen/back", nil), &body)
	assert.Equal(t, "dashboard", body.Screen)
	m.sessions.AssertExpectations(t)
	m.nav.AssertNotCalled(t, "Back", mock.Anything, mock.Anything)
}

func TestScreenHandler_BackFromResults(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(domain.ResultsScreen{QuizID: testQuizID}, nil).Once()
	m.nav.On("Back", mock.Anything, "user-1").Return(domain.DashboardScreen{}, nil).Once()
	m.catalog.On("Load", mock.Anything, testUser).Return(&domain.Dashboard{Status: domain.DashboardReady}).Once()

	resp := doRequest(t, app, http.MethodPost, "/api/screen/back", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m.nav.AssertExpectations(t)
	m.sessions.AssertNotCalled(t, "Abandon", mock.Anything, mock.Anything, mock.Anything)
}

func TestScreenHandler_StoreDown(t *testing.T) {
	app, m := newScreenTestApp(testUser)
	m.nav.On("Current", mock.Anything, "user-1").Return(nil, errors.New("redis down")).Once()

	resp := doRequest(t, app, http.MethodGet, "/api/screen", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

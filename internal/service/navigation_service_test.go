package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-room/internal/cache"
	"quiz-room/internal/domain"
)

const navTTL = time.Hour

func encodedScreen(t *testing.T, s domain.Screen) string {
	t.Helper()
	data, err := domain.MarshalScreen(s)
	require.NoError(t, err)
	return string(data)
}

func TestNavigationService_Current(t *testing.T) {
	ctx := context.Background()
	key := cache.ScreenKey("user-1")

	tests := []struct {
		name    string
		stored  string
		err     error
		want    domain.Screen
		wantErr bool
	}{
		{name: "nothing stored", err: domain.ErrCacheMiss, want: domain.DashboardScreen{}},
		{name: "corrupt value", stored: "{not json", want: domain.DashboardScreen{}},
		{name: "auth screen is never current for a signed-in user", stored: `{"screen":"auth"}`, want: domain.DashboardScreen{}},
		{name: "quiz screen", stored: `{"screen":"quiz","payload":{"quiz_id":"q1","session_id":"s1"}}`, want: domain.QuizScreen{QuizID: "q1", SessionID: "s1"}},
		{name: "store failure", err: errors.New("redis down"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCache)
			store.On("Get", ctx, key).Return(tt.stored, tt.err).Once()

			got, err := NewNavigationService(store, navTTL).Current(ctx, "user-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigationService_SelectQuiz(t *testing.T) {
	ctx := context.Background()
	key := cache.ScreenKey("user-1")
	want := domain.QuizScreen{QuizID: "q2", SessionID: "s2"}

	t.Run("from dashboard", func(t *testing.T) {
		store := new(MockCache)
		store.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()
		store.On("Set", ctx, key, encodedScreen(t, want), navTTL).Return(nil).Once()

		got, err := NewNavigationService(store, navTTL).SelectQuiz(ctx, "user-1", "q2", "s2")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		store.AssertExpectations(t)
	})

	t.Run("replaces a stale quiz screen", func(t *testing.T) {
		store := new(MockCache)
		store.On("Get", ctx, key).Return(encodedScreen(t, domain.QuizScreen{QuizID: "q1", SessionID: "s1"}), nil).Once()
		store.On("Set", ctx, key, encodedScreen(t, want), navTTL).Return(nil).Once()

		got, err := NewNavigationService(store, navTTL).SelectQuiz(ctx, "user-1", "q2", "s2")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("from results", func(t *testing.T) {
		store := new(MockCache)
		results := domain.ResultsScreen{QuizID: "q1", Outcome: domain.Outcome{Score: 1, TotalQuestions: 2}}
		store.On("Get", ctx, key).Return(encodedScreen(t, results), nil).Once()
		store.On("Set", ctx, key, encodedScreen(t, want), navTTL).Return(nil).Once()

		got, err := NewNavigationService(store, navTTL).SelectQuiz(ctx, "user-1", "q2", "s2")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("save failure", func(t *testing.T) {
		store := new(MockCache)
		store.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()
		store.On("Set", ctx, key, mock.Anything, navTTL).Return(errors.New("redis down")).Once()

		_, err := NewNavigationService(store, navTTL).SelectQuiz(ctx, "user-1", "q2", "s2")
		assert.Error(t, err)
	})
}

func TestNavigationService_CompleteQuiz(t *testing.T) {
	ctx := context.Background()
	key := cache.ScreenKey("user-1")
	outcome := domain.Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125}

	t.Run("moves to results", func(t *testing.T) {
		store := new(MockCache)
		store.On("Get", ctx, key).Return(encodedScreen(t, domain.QuizScreen{QuizID: "q1", SessionID: "s1"}), nil).Once()
		want := domain.ResultsScreen{QuizID: "q1", Outcome: outcome}
		store.On("Set", ctx, key, encodedScreen(t, want), navTTL).Return(nil).Once()

		got, err := NewNavigationService(store, navTTL).CompleteQuiz(ctx, "user-1", "s1", outcome)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		store.AssertExpectations(t)
	})

	t.Run("user already left the session", func(t *testing.T) {
		store := new(MockCache)
		store.On("Get", ctx, key).Return(encodedScreen(t, domain.QuizScreen{QuizID: "q2", SessionID: "s2"}), nil).Once()

		got, err := NewNavigationService(store, navTTL).CompleteQuiz(ctx, "user-1", "s1", outcome)
		require.NoError(t, err)
		assert.Equal(t, domain.QuizScreen{QuizID: "q2", SessionID: "s2"}, got)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNavigationService_BackAndReset(t *testing.T) {
	ctx := context.Background()
	key := cache.ScreenKey("user-1")

	store := new(MockCache)
	store.On("Get", ctx, key).Return(encodedScreen(t, domain.QuizScreen{QuizID: "q1", SessionID: "s1"}), nil).Once()
	store.On("Set", ctx, key, encodedScreen(t, domain.DashboardScreen{}), navTTL).Return(nil).Once()
	store.On("Delete", ctx, key).Return(nil).Once()

	svc := NewNavigationService(store, navTTL)
	got, err := svc.Back(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardScreen{}, got)

	require.NoError(t, svc.Reset(ctx, "user-1"))
	store.AssertExpectations(t)
}

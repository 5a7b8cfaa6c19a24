package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-room/internal/domain"
)

func fixtureQuestions(quizID string, n int) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			QuizID:        quizID,
			QuestionText:  fmt.Sprintf("Question %d", i+1),
			OptionA:       "alpha",
			OptionB:       "bravo",
			OptionC:       "charlie",
			OptionD:       "delta",
			CorrectAnswer: domain.OptionKeys[i%4],
			QuestionOrder: i + 1,
		}
	}
	return questions
}

func TestResultsService_Load(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	questionRepo := new(MockQuestionRepository)
	attemptRepo := new(MockAttemptRepository)
	questions := fixtureQuestions("quiz-1", 5)
	answers := map[string]domain.OptionKey{
		"q1": questions[0].CorrectAnswer,
		"q2": questions[1].CorrectAnswer,
		"q3": questions[2].CorrectAnswer,
		"q4": domain.NoAnswer,
		"q5": domain.NoAnswer,
	}
	quizRepo.On("GetTitle", mock.Anything, "quiz-1").Return("Go Basics", nil).Once()
	questionRepo.On("ListByQuiz", mock.Anything, "quiz-1").Return(questions, nil).Once()
	attemptRepo.On("LatestAnswers", mock.Anything, "user-1", "quiz-1").Return(answers, nil).Once()

	svc := NewResultsService(quizRepo, questionRepo, attemptRepo)
	results, err := svc.Load(context.Background(), testSession("user-1"), "quiz-1",
		domain.Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125})

	require.NoError(t, err)
	assert.Equal(t, "Go Basics", results.QuizTitle)
	assert.Equal(t, 60, results.Percentage)
	assert.Equal(t, "D", results.Grade)
	assert.Equal(t, 25, results.AverageSecondsPerQuestion)
	require.Len(t, results.Questions, 5)
	assert.True(t, results.Questions[0].IsCorrect)
	assert.False(t, results.Questions[4].IsCorrect)
}

func TestResultsService_Load_Failures(t *testing.T) {
	tests := []struct {
		name     string
		titleErr error
		wantCode domain.ErrorCode
	}{
		{name: "quiz missing", titleErr: fmt.Errorf("quiz quiz-1: %w", domain.ErrNoRows), wantCode: domain.CodeQuizNotFound},
		{name: "backend down", titleErr: errors.New("connection reset"), wantCode: domain.CodeBackendUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quizRepo := new(MockQuizRepository)
			questionRepo := new(MockQuestionRepository)
			attemptRepo := new(MockAttemptRepository)
			quizRepo.On("GetTitle", mock.Anything, "quiz-1").Return("", tt.titleErr).Once()
			questionRepo.On("ListByQuiz", mock.Anything, "quiz-1").Return(fixtureQuestions("quiz-1", 2), nil).Maybe()
			attemptRepo.On("LatestAnswers", mock.Anything, "user-1", "quiz-1").Return(map[string]domain.OptionKey{}, nil).Maybe()

			svc := NewResultsService(quizRepo, questionRepo, attemptRepo)
			_, err := svc.Load(context.Background(), testSession("user-1"), "quiz-1", domain.Outcome{})

			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

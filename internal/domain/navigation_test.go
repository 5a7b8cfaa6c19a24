package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenTransitions(t *testing.T) {
	quiz, err := SelectQuiz(DashboardScreen{}, "quiz-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, QuizScreen{QuizID: "quiz-1", SessionID: "sess-1"}, quiz)

	outcome := Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125}
	results, err := CompleteQuiz(quiz, outcome)
	require.NoError(t, err)
	assert.Equal(t, ResultsScreen{QuizID: "quiz-1", Outcome: outcome}, results)

	back, err := Back(results)
	require.NoError(t, err)
	assert.Equal(t, DashboardScreen{}, back)
}

func TestScreenTransitions_Invalid(t *testing.T) {
	_, err := CompleteQuiz(DashboardScreen{}, Outcome{})
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = SelectQuiz(QuizScreen{QuizID: "quiz-1"}, "quiz-2", "sess-2")
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeInvalidTransition, domainErr.Code)

	_, err = Back(AuthScreen{})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestMarshalScreen_RoundTripsEveryVariant(t *testing.T) {
	screens := []Screen{
		AuthScreen{},
		DashboardScreen{},
		QuizScreen{QuizID: "quiz-1", SessionID: "sess-1"},
		ResultsScreen{QuizID: "quiz-1", Outcome: Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125}},
	}
	for _, s := range screens {
		t.Run(string(s.Name()), func(t *testing.T) {
			data, err := MarshalScreen(s)
			require.NoError(t, err)
			got, err := UnmarshalScreen(data)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestUnmarshalScreen_Unknown(t *testing.T) {
	_, err := UnmarshalScreen([]byte(`{"screen":"settings"}`))
	assert.Error(t, err)
	_, err = UnmarshalScreen([]byte(`not json`))
	assert.Error(t, err)
}

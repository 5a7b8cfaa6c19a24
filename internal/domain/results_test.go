package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResults_ScenarioThreeOfFive(t *testing.T) {
	questions := newTestQuestions(5)
	answers := map[string]OptionKey{
		"q1": questions[0].CorrectAnswer,
		"q2": questions[1].CorrectAnswer,
		"q3": questions[2].CorrectAnswer,
		"q4": NoAnswer,
		"q5": NoAnswer,
	}

	r := BuildResults("quiz-1", "Go Basics", questions, answers, Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125})

	assert.Equal(t, 60, r.Percentage)
	assert.Equal(t, "D", r.Grade)
	assert.Equal(t, 25, r.AverageSecondsPerQuestion)
	require.Len(t, r.Questions, 5)

	for _, rq := range r.Questions[:3] {
		assert.True(t, rq.IsCorrect)
	}
	for _, rq := range r.Questions[3:] {
		assert.False(t, rq.IsCorrect)
		for _, opt := range rq.Options {
			assert.False(t, opt.Selected, "blank question must not carry a selection")
			if opt.Key == rq.Question.CorrectAnswer {
				assert.Equal(t, OptionCorrect, opt.State)
			} else {
				assert.Equal(t, OptionNeutral, opt.State)
			}
		}
	}
}

func TestReviewQuestionFor_WrongSelection(t *testing.T) {
	q := Question{ID: "q1", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", CorrectAnswer: OptionB}

	rq := ReviewQuestionFor(q, OptionD)

	assert.False(t, rq.IsCorrect)
	states := map[OptionKey]OptionState{}
	for _, opt := range rq.Options {
		states[opt.Key] = opt.State
	}
	assert.Equal(t, map[OptionKey]OptionState{
		OptionA: OptionNeutral,
		OptionB: OptionCorrect,
		OptionC: OptionNeutral,
		OptionD: OptionIncorrectSelection,
	}, states)
	assert.Equal(t, "4", rq.Options[3].Text)
}

func TestBuildResults_ZeroTotal(t *testing.T) {
	r := BuildResults("quiz-1", "Empty", nil, nil, Outcome{})
	assert.Equal(t, 0, r.Percentage)
	assert.Equal(t, "F", r.Grade)
	assert.Equal(t, 0, r.AverageSecondsPerQuestion)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{3, 5, 60},
		{5, 5, 100},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{4, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.part, tt.whole), "Percent(%d, %d)", tt.part, tt.whole)
	}
}

func TestPercentStaysInRange(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for score := 0; score <= total; score++ {
			p := Percent(score, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := map[int]string{100: "A", 90: "A", 89: "B", 80: "B", 79: "C", 70: "C", 69: "D", 60: "D", 59: "F", 0: "F"}
	for pct, want := range tests {
		assert.Equal(t, want, Grade(pct), "Grade(%d)", pct)
	}
}

func TestComputeStats(t *testing.T) {
	t.Run("no attempts", func(t *testing.T) {
		stats := ComputeStats(nil)
		assert.Equal(t, DashboardStats{}, stats)
	})

	t.Run("aggregates over attempts", func(t *testing.T) {
		attempts := []Attempt{
			{QuizID: "q1", Score: 3, TotalQuestions: 5, TimeTakenSeconds: 125},
			{QuizID: "q1", Score: 5, TotalQuestions: 5, TimeTakenSeconds: 100},
			{QuizID: "q2", Score: 1, TotalQuestions: 4, TimeTakenSeconds: 30},
		}
		stats := ComputeStats(attempts)
		assert.Equal(t, 3, stats.TotalAttempts)
		// (3+5+1) / (5+5+4) = 64.28 -> 64
		assert.Equal(t, 64, stats.AverageScore)
		assert.Equal(t, 100, stats.BestScore)
		assert.Equal(t, 255, stats.TimeSpentSeconds)
	})

	t.Run("attempts with zero questions do not divide by zero", func(t *testing.T) {
		stats := ComputeStats([]Attempt{{QuizID: "q1"}})
		assert.Equal(t, 1, stats.TotalAttempts)
		assert.Equal(t, 0, stats.AverageScore)
		assert.Equal(t, 0, stats.BestScore)
	})
}

func TestBuildQuizCards(t *testing.T) {
	quizzes := []Quiz{{ID: "q1", Title: "Go"}, {ID: "q2", Title: "SQL"}}
	attempts := []Attempt{
		{QuizID: "q1", Score: 3, TotalQuestions: 5},
		{QuizID: "q1", Score: 5, TotalQuestions: 5},
	}

	cards := BuildQuizCards(quizzes, attempts)
	require.Len(t, cards, 2)

	assert.Equal(t, "q1", cards[0].Quiz.ID)
	assert.Equal(t, 2, cards[0].AttemptCount)
	require.NotNil(t, cards[0].BestPercentage)
	assert.Equal(t, 100, *cards[0].BestPercentage)

	assert.Equal(t, 0, cards[1].AttemptCount)
	assert.Nil(t, cards[1].BestPercentage)
}

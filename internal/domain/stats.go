package domain

import "math"

// Percent returns round(100 × part / whole), 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// Grade buckets a percentage into a letter grade.
func Grade(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// AverageSeconds returns round(total / count), 0 when count is not positive.
func AverageSeconds(totalSeconds, count int) int {
	if count <= 0 {
		return 0
	}
	return int(math.Round(float64(totalSeconds) / float64(count)))
}

// DashboardStatus is the display state of the catalog.
type DashboardStatus string

const (
	DashboardReady            DashboardStatus = "ready"
	DashboardConnectionFailed DashboardStatus = "connection_failed"
	DashboardError            DashboardStatus = "error"
)

// DashboardStats aggregates every attempt of a user.
type DashboardStats struct {
	TotalAttempts    int
	AverageScore     int
	BestScore        int
	TimeSpentSeconds int
}

// QuizCard is a catalog entry with the user's history on that quiz.
type QuizCard struct {
	Quiz         Quiz
	AttemptCount int
	// BestPercentage is nil when the user never attempted the quiz.
	BestPercentage *int
}

// Dashboard is the catalog screen state.
type Dashboard struct {
	Status  DashboardStatus
	Message string
	Quizzes []QuizCard
	Stats   DashboardStats
}

// ComputeStats derives the dashboard aggregates from the attempt list.
func ComputeStats(attempts []Attempt) DashboardStats {
	stats := DashboardStats{TotalAttempts: len(attempts)}
	var scoreSum, totalSum int
	for i := range attempts {
		a := &attempts[i]
		scoreSum += a.Score
		totalSum += a.TotalQuestions
		stats.TimeSpentSeconds += a.TimeTakenSeconds
		if a.TotalQuestions > 0 {
			if p := a.Percentage(); p > stats.BestScore {
				stats.BestScore = p
			}
		}
	}
	stats.AverageScore = Percent(scoreSum, totalSum)
	return stats
}

// BuildQuizCards pairs each quiz with the attempts filtered by its id.
func BuildQuizCards(quizzes []Quiz, attempts []Attempt) []QuizCard {
	cards := make([]QuizCard, 0, len(quizzes))
	for _, q := range quizzes {
		card := QuizCard{Quiz: q}
		for i := range attempts {
			a := &attempts[i]
			if a.QuizID != q.ID {
				continue
			}
			card.AttemptCount++
			p := a.Percentage()
			if card.BestPercentage == nil || p > *card.BestPercentage {
				best := p
				card.BestPercentage = &best
			}
		}
		cards = append(cards, card)
	}
	return cards
}

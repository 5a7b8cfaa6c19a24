package domain

import (
	"context"
	"time"
)

// Attempt is one submission of a quiz by a user. It is never updated.
type Attempt struct {
	ID               string
	UserID           string
	QuizID           string
	Score            int
	TotalQuestions   int
	TimeTakenSeconds int
	// Answers maps question id to the selected option, "" when unanswered.
	Answers     map[string]OptionKey
	CompletedAt time.Time
	CreatedAt   time.Time
}

// Percentage returns round(100 × score / total), 0 when total is 0.
func (a *Attempt) Percentage() int {
	return Percent(a.Score, a.TotalQuestions)
}

// Validate checks the bounds of an attempt before it is persisted.
func (a *Attempt) Validate() error {
	if a.UserID == "" || a.QuizID == "" {
		return NewInvalidInputError("attempt requires user_id and quiz_id")
	}
	if a.TotalQuestions < 0 || a.Score < 0 || a.Score > a.TotalQuestions {
		return NewInvalidInputError("attempt score must be between 0 and total_questions")
	}
	if a.TimeTakenSeconds < 0 {
		return NewInvalidInputError("time_taken_seconds must not be negative")
	}
	return nil
}

// AttemptRepository persists and reads attempts.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *Attempt) error
	ListByUser(ctx context.Context, userID string) ([]Attempt, error)
	// LatestAnswers returns the answers of the user's most recent attempt on a quiz.
	LatestAnswers(ctx context.Context, userID, quizID string) (map[string]OptionKey, error)
}

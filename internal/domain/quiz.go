package domain

import (
	"context"
	"strings"
	"time"
)

// OptionKey identifies one of the four options of a question.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"

	// NoAnswer is stored for questions the user left blank.
	NoAnswer OptionKey = ""
)

// OptionKeys lists the option keys in display order.
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Valid reports whether k is one of A-D.
func (k OptionKey) Valid() bool {
	switch k {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// ParseOptionKey normalizes user input such as "b" into an OptionKey.
func ParseOptionKey(s string) (OptionKey, error) {
	k := OptionKey(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return NoAnswer, ErrInvalidOption
	}
	return k, nil
}

// Quiz is a quiz definition as stored by the backend.
type Quiz struct {
	ID              string
	Title           string
	Description     *string
	DurationMinutes int
	TotalQuestions  int
	CreatedBy       string
	CreatedAt       time.Time
	IsActive        bool
}

// Duration is the time allowed for one attempt.
func (q *Quiz) Duration() time.Duration {
	return time.Duration(q.DurationMinutes) * time.Minute
}

// Question is one multiple-choice question of a quiz.
type Question struct {
	ID            string
	QuizID        string
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer OptionKey
	QuestionOrder int
	CreatedAt     time.Time
}

// Option returns the text of the option identified by k.
func (q *Question) Option(k OptionKey) string {
	switch k {
	case OptionA:
		return q.OptionA
	case OptionB:
		return q.OptionB
	case OptionC:
		return q.OptionC
	case OptionD:
		return q.OptionD
	}
	return ""
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return NewInvalidInputError("question_text is required")
	}
	if !q.CorrectAnswer.Valid() {
		return NewInvalidInputError("correct_answer must be one of A, B, C, D")
	}
	return nil
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if q.DurationMinutes <= 0 {
		return NewInvalidInputError("duration_minutes must be positive")
	}
	return nil
}

// QuizRepository reads quizzes from the backend.
type QuizRepository interface {
	// Probe performs a minimal read to check that the backend is reachable.
	Probe(ctx context.Context) error
	ListActive(ctx context.Context) ([]Quiz, error)
	GetByID(ctx context.Context, id string) (*Quiz, error)
	GetTitle(ctx context.Context, id string) (string, error)
}

// QuestionRepository reads the questions of a quiz.
type QuestionRepository interface {
	ListByQuiz(ctx context.Context, quizID string) ([]Question, error)
}

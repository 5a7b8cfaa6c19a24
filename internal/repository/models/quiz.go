package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AnswerMap is a question id to option key map stored as jsonb.
type AnswerMap map[string]string

// Value implements the driver.Valuer interface
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		// nil map is stored as an empty JSON object
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}

	var bytesToParse []byte

	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*m = AnswerMap{}
		return nil
	}

	parsed := AnswerMap{}
	if err := json.Unmarshal(bytesToParse, &parsed); err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	DurationMinutes int            `db:"duration_minutes"`
	TotalQuestions  int            `db:"total_questions"`
	CreatedBy       sql.NullString `db:"created_by"`
	CreatedAt       time.Time      `db:"created_at"`
	IsActive        bool           `db:"is_active"`
}

// Question is a row of the questions table.
type Question struct {
	ID            string    `db:"id"`
	QuizID        string    `db:"quiz_id"`
	QuestionText  string    `db:"question_text"`
	OptionA       string    `db:"option_a"`
	OptionB       string    `db:"option_b"`
	OptionC       string    `db:"option_c"`
	OptionD       string    `db:"option_d"`
	CorrectAnswer string    `db:"correct_answer"`
	QuestionOrder int       `db:"question_order"`
	CreatedAt     time.Time `db:"created_at"`
}

// UserQuizAttempt is a row of the user_quiz_attempts table.
type UserQuizAttempt struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	QuizID         string    `db:"quiz_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	TimeTaken      int       `db:"time_taken"`
	Answers        AnswerMap `db:"answers"`
	CompletedAt    time.Time `db:"completed_at"`
	CreatedAt      time.Time `db:"created_at"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-room/internal/domain"
	"quiz-room/internal/repository/models"
	"quiz-room/internal/util"
)

// SeedRepository writes sample quizzes. Browser-facing code never writes quizzes.
type SeedRepository struct {
	db DBTX
}

func NewSeedRepository(db DBTX) *SeedRepository {
	return &SeedRepository{db: db}
}

// UpsertQuiz inserts the quiz or updates the one with the same title, returning its id.
func (r *SeedRepository) UpsertQuiz(ctx context.Context, quiz *domain.Quiz) (string, error) {
	if err := quiz.Validate(); err != nil {
		return "", err
	}
	exec := GetExecutor(ctx, r.db)

	var description sql.NullString
	if quiz.Description != nil {
		description = util.StringToNullString(*quiz.Description)
	}

	var id string
	err := exec.GetContext(ctx, &id, `SELECT id FROM quizzes WHERE title = $1 LIMIT 1`, quiz.Title)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insert := `INSERT INTO quizzes (title, description, duration_minutes, is_active)
		           VALUES ($1, $2, $3, $4) RETURNING id`
		if err := exec.GetContext(ctx, &id, insert, quiz.Title, description, quiz.DurationMinutes, quiz.IsActive); err != nil {
			return "", fmt.Errorf("failed to insert quiz %q: %w", quiz.Title, err)
		}
	case err != nil:
		return "", fmt.Errorf("failed to look up quiz %q: %w", quiz.Title, err)
	default:
		update := `UPDATE quizzes SET description = $1, duration_minutes = $2, is_active = $3 WHERE id = $4`
		if _, err := exec.ExecContext(ctx, update, description, quiz.DurationMinutes, quiz.IsActive, id); err != nil {
			return "", fmt.Errorf("failed to update quiz %q: %w", quiz.Title, err)
		}
	}
	return id, nil
}

// ReplaceQuestions deletes the questions of a quiz and inserts the given ones.
func (r *SeedRepository) ReplaceQuestions(ctx context.Context, quizID string, questions []domain.Question) error {
	exec := GetExecutor(ctx, r.db)

	if _, err := exec.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = $1`, quizID); err != nil {
		return fmt.Errorf("failed to clear questions of quiz %s: %w", quizID, err)
	}

	insert := `INSERT INTO questions (quiz_id, question_text, option_a, option_b, option_c, option_d, correct_answer, question_order)
	           VALUES (:quiz_id, :question_text, :option_a, :option_b, :option_c, :option_d, :correct_answer, :question_order)`
	for i := range questions {
		q := questions[i]
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		row := models.Question{
			QuizID:        quizID,
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: string(q.CorrectAnswer),
			QuestionOrder: i + 1,
		}
		if _, err := exec.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("failed to insert question %d of quiz %s: %w", i+1, quizID, err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"quiz-room/internal/domain"
	"quiz-room/internal/repository/models"
)

type sqlxQuestionRepository struct {
	db DBTX
}

// NewQuestionRepository creates a new question repository backed by db.
func NewQuestionRepository(db DBTX) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:            m.ID,
		QuizID:        m.QuizID,
		QuestionText:  m.QuestionText,
		OptionA:       m.OptionA,
		OptionB:       m.OptionB,
		OptionC:       m.OptionC,
		OptionD:       m.OptionD,
		CorrectAnswer: domain.OptionKey(m.CorrectAnswer),
		QuestionOrder: m.QuestionOrder,
		CreatedAt:     m.CreatedAt,
	}
}

// ListByQuiz returns the questions of a quiz in question_order.
func (r *sqlxQuestionRepository) ListByQuiz(ctx context.Context, quizID string) ([]domain.Question, error) {
	var rows []models.Question
	query := `SELECT id, quiz_id, question_text, option_a, option_b, option_c, option_d, correct_answer, question_order, created_at
	          FROM questions WHERE quiz_id = $1 ORDER BY question_order ASC`
	if err := r.db.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list questions of quiz %s: %w", quizID, err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-room/internal/domain"
	"quiz-room/internal/repository/models"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db DBTX
}

// NewAttemptRepository creates a new attempt repository backed by db.
func NewAttemptRepository(db DBTX) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAnswers(m models.AnswerMap) map[string]domain.OptionKey {
	answers := make(map[string]domain.OptionKey, len(m))
	for questionID, key := range m {
		answers[questionID] = domain.OptionKey(key)
	}
	return answers
}

func fromDomainAnswers(answers map[string]domain.OptionKey) models.AnswerMap {
	m := make(models.AnswerMap, len(answers))
	for questionID, key := range answers {
		m[questionID] = string(key)
	}
	return m
}

func toDomainAttempt(m *models.UserQuizAttempt) domain.Attempt {
	return domain.Attempt{
		ID:               m.ID,
		UserID:           m.UserID,
		QuizID:           m.QuizID,
		Score:            m.Score,
		TotalQuestions:   m.TotalQuestions,
		TimeTakenSeconds: m.TimeTaken,
		Answers:          toDomainAnswers(m.Answers),
		CompletedAt:      m.CompletedAt,
		CreatedAt:        m.CreatedAt,
	}
}

// Create inserts the attempt and fills in the id and created_at assigned by the database.
func (r *sqlxAttemptRepository) Create(ctx context.Context, attempt *domain.Attempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now()
	}

	answers, err := fromDomainAnswers(attempt.Answers).Value()
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	var inserted struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	query := `INSERT INTO user_quiz_attempts (user_id, quiz_id, score, total_questions, time_taken, answers, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
	          RETURNING id, created_at`
	err = r.db.GetContext(ctx, &inserted, query,
		attempt.UserID,
		attempt.QuizID,
		attempt.Score,
		attempt.TotalQuestions,
		attempt.TimeTakenSeconds,
		answers,
		attempt.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	attempt.ID = inserted.ID
	attempt.CreatedAt = inserted.CreatedAt
	return nil
}

// ListByUser returns every attempt of the user, most recent first.
func (r *sqlxAttemptRepository) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	var rows []models.UserQuizAttempt
	query := `SELECT id, user_id, quiz_id, score, total_questions, time_taken, answers, completed_at, created_at
	          FROM user_quiz_attempts WHERE user_id = $1 ORDER BY completed_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list attempts for user %s: %w", userID, err)
	}

	attempts := make([]domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}

// LatestAnswers returns an empty map when the user has no attempt on the quiz.
func (r *sqlxAttemptRepository) LatestAnswers(ctx context.Context, userID, quizID string) (map[string]domain.OptionKey, error) {
	var answers models.AnswerMap
	query := `SELECT answers FROM user_quiz_attempts
	          WHERE user_id = $1 AND quiz_id = $2
	          ORDER BY created_at DESC LIMIT 1`
	if err := r.db.GetContext(ctx, &answers, query, userID, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return map[string]domain.OptionKey{}, nil
		}
		return nil, fmt.Errorf("failed to get latest answers for quiz %s: %w", quizID, err)
	}
	return toDomainAnswers(answers), nil
}
